// Package buf implements the dynamic byte buffer encode uses as its output
// sink: a grow-on-append byte accumulator that doubles capacity on demand
// instead of relying on the growth policy of a borrowed []byte.
//
// A plain append-growing []byte would serve the same purpose with less code;
// this type exists to give encode explicit control over a concrete growth
// discipline (power-of-two capacity, starting at 64) rather than delegating
// it to the runtime's slice-growth heuristics.
package buf

// Buffer is a growable, append-only byte sink.
type Buffer struct {
	data []byte
}

// New returns a Buffer with at least cap bytes of backing capacity
// preallocated. A cap of 0 defers allocation to the first Append.
func New(cap int) *Buffer {
	if cap <= 0 {
		return &Buffer{}
	}
	return &Buffer{data: make([]byte, 0, cap)}
}

// Append copies p onto the end of the buffer, growing the backing storage to
// the smallest power-of-two capacity that fits the new length (starting from
// 64) whenever the current capacity is insufficient.
func (b *Buffer) Append(p []byte) {
	need := len(b.data) + len(p)
	if need > cap(b.data) {
		b.grow(need)
	}
	b.data = append(b.data, p...)
}

// AppendByte appends a single byte, growing as Append would.
func (b *Buffer) AppendByte(c byte) {
	if len(b.data)+1 > cap(b.data) {
		b.grow(len(b.data) + 1)
	}
	b.data = append(b.data, c)
}

// AppendString appends s without an intermediate []byte conversion.
func (b *Buffer) AppendString(s string) {
	need := len(b.data) + len(s)
	if need > cap(b.data) {
		b.grow(need)
	}
	b.data = append(b.data, s...)
}

func (b *Buffer) grow(need int) {
	newCap := 64
	for newCap < need {
		newCap *= 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the accumulated bytes. The returned slice aliases the
// buffer's backing array; callers that intend to keep it past further
// Buffer use should copy it.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Release drops the buffer's backing storage, leaving it usable (and empty)
// for reuse.
func (b *Buffer) Release() {
	b.data = nil
}
