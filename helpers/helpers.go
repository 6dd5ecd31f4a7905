package helpers

import (
	// Go Internal Packages
	"encoding/json"
	"fmt"
	"io"
)

// FprintStruct writes v to w as indented JSON, falling back to the Go
// representation when v cannot be marshaled.
func FprintStruct(w io.Writer, v any) {
	res, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%+v\n", v)
		return
	}
	fmt.Fprintln(w, string(res))
}
