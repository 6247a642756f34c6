package common

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}

// Table writes rows aligned in columns.
type Table struct {
	w *tabwriter.Writer
}

func NewTable(w io.Writer, headers ...any) *Table {
	t := &Table{w: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	t.Row(headers...)
	return t
}

func (t *Table) Row(columns ...any) {
	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, c)
	}
	fmt.Fprintln(t.w)
}

func (t *Table) Flush() error {
	return errors.WithStack(t.w.Flush())
}

// RelativeTime renders an API timestamp as "3 minutes ago".
func RelativeTime(raw string) string {
	t, err := time.Parse(api.TimestampFormat, raw)
	if err != nil {
		return raw
	}

	return humanize.Time(t)
}

func PageFooter(w io.Writer, page, totalPages int, totalElements int64) {
	fmt.Fprintf(w, "\npage %d/%d, %s record(s)\n", page+1, max(totalPages, 1), humanize.Comma(totalElements))
}
