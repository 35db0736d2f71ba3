package types

import (
	"io"
	"strings"
)

// Print writes the rendering of v followed by a newline
func Print(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Canonical(v)+"\n")
	return err
}

// PrintMany writes the renderings of vs separated by single spaces,
// followed by a newline. No values prints an empty line.
func PrintMany(w io.Writer, vs ...Value) error {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Canonical(v)
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}
