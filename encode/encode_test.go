package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radikant-go/strictjson/decode"
	"github.com/radikant-go/strictjson/encode"
	"github.com/radikant-go/strictjson/jsonerr"
	"github.com/radikant-go/strictjson/value"
)

func mustEncode(t *testing.T, v *value.Value) string {
	t.Helper()
	out, err := encode.Encode(v)
	require.NoError(t, err)
	return string(out)
}

func TestEncodeScalars(t *testing.T) {
	assert.Equal(t, "null", mustEncode(t, value.NewNull()))
	assert.Equal(t, "true", mustEncode(t, value.NewBool(true)))
	assert.Equal(t, "false", mustEncode(t, value.NewBool(false)))
}

func TestEncodeEmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", mustEncode(t, value.NewArray()))
	assert.Equal(t, "{}", mustEncode(t, value.NewObject()))
}

func TestEncodeIsCompact(t *testing.T) {
	arr := value.NewArray()
	require.NoError(t, arr.Add(value.NewNumber(1)))
	obj := value.NewObject()
	require.NoError(t, obj.Put("a", value.NewNumber(2)))
	require.NoError(t, arr.Add(obj))

	assert.Equal(t, `[1,{"a":2}]`, mustEncode(t, arr))
}

func TestEncodeObjectPreservesInsertionOrderNotSorted(t *testing.T) {
	obj := value.NewObject()
	require.NoError(t, obj.Put("z", value.NewNumber(1)))
	require.NoError(t, obj.Put("a", value.NewNumber(2)))

	assert.Equal(t, `{"z":1,"a":2}`, mustEncode(t, obj))
}

func TestEncodeStringEscapes(t *testing.T) {
	assert.Equal(t, `"Line\nBreak\tTab"`, mustEncode(t, value.NewString("Line\nBreak\tTab")))
	assert.Equal(t, `"\u0001"`, mustEncode(t, value.NewString(string([]byte{0x01}))))
}

func TestEncodeSolidusNotEscaped(t *testing.T) {
	assert.Equal(t, `"a/b"`, mustEncode(t, value.NewString("a/b")))
}

func TestEncodeNonFiniteNumberFails(t *testing.T) {
	v := value.NewNumber(nan())
	_, err := encode.Encode(v)
	require.Error(t, err)
	var je *jsonerr.Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, jsonerr.EncodeFailure, je.Class)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestEncodeRejectsExcessiveDepth(t *testing.T) {
	root := value.NewArray()
	cur := root
	for i := 0; i < 600; i++ {
		child := value.NewArray()
		require.NoError(t, cur.Add(child))
		cur = child
	}
	_, err := encode.Encode(root)
	require.Error(t, err)
	var je *jsonerr.Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, jsonerr.DepthExceeded, je.Class)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	in := `{"a":1,"b":[true,null,"x"],"c":{"nested":3.25}}`
	v, err := decode.Decode([]byte(in))
	require.NoError(t, err)
	defer v.Release()

	out, err := encode.Encode(v)
	require.NoError(t, err)

	v2, err := decode.Decode(out)
	require.NoError(t, err)
	defer v2.Release()

	out2, err := encode.Encode(v2)
	require.NoError(t, err)

	// Property: double round-trip stability, byte for byte.
	assert.Equal(t, string(out), string(out2))
}

func TestEncodeNumberRoundTripsThroughDecode(t *testing.T) {
	for _, f := range []float64{0, -0.0, 1, -1, 0.1, 1e21, 1e-7, 123456789.123456} {
		out, err := encode.Encode(value.NewNumber(f))
		require.NoError(t, err)

		v, err := decode.Decode(out)
		require.NoError(t, err)
		got, _ := v.Num()
		assert.Equal(t, f, got, "round trip of %v via %q", f, out)
	}
}
