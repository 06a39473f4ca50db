package namelist

import (
	"bytes"
	"fmt"
	"io"
)

// Encode writes the document in canonical namelist form. Comments from the
// source template are not carried over (matching what the Fortran runtime
// itself does when rewriting a namelist); values and ordering are.
func (d *Document) Encode(w io.Writer) error {
	for i, s := range d.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "&%s\n", s.Name); err != nil {
			return err
		}
		for _, e := range s.Entries {
			if _, err := fmt.Fprintf(w, "%s=%s\n", e.Key, e.Value.Text()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "/"); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders the document to memory.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail.
	_ = d.Encode(&buf)
	return buf.Bytes()
}
