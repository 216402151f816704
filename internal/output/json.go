// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"fzrank/internal/rank"
)

// Match is the stable wire shape for one ranked result.
type Match struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// WriteJSON writes a single pretty-indented JSON array of matches, best
// first. limit 0 means no limit; an empty ranking writes "[]".
func WriteJSON(w io.Writer, list *rank.List, limit int) error {
	out := make([]Match, 0, list.Len())
	for text, score := range list.All() {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, Match{Text: text, Score: score})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
