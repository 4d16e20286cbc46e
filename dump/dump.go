package dump

import (
	"fmt"
	"io"

	"github.com/lunixbochs/sectdump/models"
)

// Writer is the default reporting sink. It renders each category's resolved
// location (offsets and size) to w, one line per category, without ever
// inspecting section contents.
type Writer struct {
	w io.Writer
}

func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (d *Writer) Consume(b *models.Bundle) error {
	if _, err := fmt.Fprintf(d.w, "%s:\n", b.Binary); err != nil {
		return err
	}
	for _, cat := range models.Categories() {
		r := b.Range(cat)
		var err error
		if r.Absent() {
			_, err = fmt.Fprintf(d.w, "  %-18s absent\n", cat)
		} else {
			_, err = fmt.Fprintf(d.w, "  %-18s [0x%x-0x%x] %d bytes\n", cat, r.Start, r.End, r.Len())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
