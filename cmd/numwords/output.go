package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON writes v as a single JSON line.
func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// writeLine writes a formatted line.
func writeLine(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
