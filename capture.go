package kattlog

import "time"

// Mode is the interactive classifier's operating mode, set by the hosting
// frame. In navigate mode pointer events pass through untouched; in capture
// mode the element under the cursor is scored and may be captured.
type Mode string

// Interactive modes.
const (
	ModeNavigate Mode = "navigate"
	ModeCapture  Mode = "capture"
)

// InteractiveCapture is emitted once per confirmed pointer click. It is
// ephemeral: consumed immediately by the hosting application across a
// frame boundary, never persisted by this engine.
type InteractiveCapture struct {
	ID           string    `json:"id"`
	HTML         string    `json:"html"`
	URL          string    `json:"url"`
	ProductURL   string    `json:"productUrl"`
	TagName      string    `json:"tagName"`
	PreviewImage string    `json:"previewImage"`
	TextSnippet  string    `json:"textSnippet"`
	Timestamp    time.Time `json:"timestamp"`
}
