package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/nicobar"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// reportError prints the user-facing message of err and returns it.
func reportError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", nicobar.ErrorMessage(err))
	return err
}
