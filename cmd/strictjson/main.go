// Command strictjson is a thin CLI demo around the codec, carried as ambient
// tooling around the decode/encode/jsonprint packages.
//
// Usage:
//
//	strictjson format [--log-level=level] [--log-format=text|json] [file|-]
//	strictjson verify [file|-]
//	strictjson print [--indent=STR] [file|-]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
