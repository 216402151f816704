// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"fzrank/internal/rank"
)

// Output format names (--output).
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteText prints one "<text> (<score>)" line per match, best first.
// limit 0 means no limit.
func WriteText(w io.Writer, list *rank.List, limit int) error {
	n := 0
	for text, score := range list.All() {
		if limit > 0 && n >= limit {
			break
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", text, score); err != nil {
			return err
		}
		n++
	}
	return nil
}
