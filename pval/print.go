package pval

import "io"

// WriteString writes the diagnostic rendering of v to w. The output is for
// humans: it is not guaranteed to parse back into a value and is unrelated
// to the serialization codec.
func WriteString(w io.Writer, v Value) error {
	_, err := io.WriteString(w, v.String())
	return err
}
