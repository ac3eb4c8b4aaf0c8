package video

// Timeline shapes for the hosted slideshow renderer. Only the fields the
// submit call needs are modeled.

type Asset struct {
	Type   string `json:"type"`
	Src    string `json:"src,omitempty"`
	HTML   string `json:"html,omitempty"`
	CSS    string `json:"css,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Clip struct {
	Asset    Asset   `json:"asset"`
	Start    float64 `json:"start"`
	Length   float64 `json:"length"`
	Effect   string  `json:"effect,omitempty"`
	Position string  `json:"position,omitempty"`
}

type Track struct {
	Clips []Clip `json:"clips"`
}

type Timeline struct {
	Tracks []Track `json:"tracks"`
}

type Output struct {
	Format     string `json:"format"`
	Resolution string `json:"resolution"`
}

type RenderRequest struct {
	Timeline Timeline `json:"timeline"`
	Output   Output   `json:"output"`
}

// JobStatus is the renderer-reported state of a job. A job moves from queued
// through intermediate states to exactly one of done or failed, never back.
type JobStatus string

const (
	StatusQueued JobStatus = "queued"
	StatusDone   JobStatus = "done"
	StatusFailed JobStatus = "failed"
)

// RenderJob is one asynchronous composition task, polled by id.
type RenderJob struct {
	ID     string    `json:"id"`
	Status JobStatus `json:"status"`
	URL    string    `json:"url,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// GenerateResult reports a render submission. Success false with a Reason
// covers both the missing-key soft skip and API failures; the caller decides
// how hard to treat it.
type GenerateResult struct {
	Success  bool   `json:"success"`
	RenderID string `json:"render_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
