package social

import "encoding/json"

// PostResult is the outcome of one publish attempt. Reason is set on a
// soft skip (missing credentials), Error on an API failure; both leave
// Success false without aborting the pipeline.
type PostResult struct {
	Success bool            `json:"success"`
	Reason  string          `json:"reason,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// truncateRunes caps a string at limit runes, matching platform title limits
// that count characters rather than bytes.
func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
