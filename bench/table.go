package bench

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteTable prints rep grouped by size, in the order the cases ran.
func WriteTable(w io.Writer, rep Report) error {
	p := message.NewPrinter(language.English)

	size := -1
	for i, c := range rep.Cases {
		if c.Size != size {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			size = c.Size
			if _, err := p.Fprintf(w, "Testing input size: %d\n%s\n", size, strings.Repeat("-", 30)); err != nil {
				return err
			}
		}

		if _, err := p.Fprintf(w, "  %-15s: %8.3f ms | %8d accesses | %6d comparisons | Result: %s\n",
			c.Flavor.String(),
			c.Metrics.ExecutionTimeMs(),
			c.Metrics.ArrayAccesses,
			c.Metrics.Comparisons,
			formatResult(c.Value, c.Found),
		); err != nil {
			return err
		}
		if c.Mismatch {
			if _, err := io.WriteString(w, "    ERROR: result mismatch against the reference\n"); err != nil {
				return err
			}
		}
	}

	return nil
}
