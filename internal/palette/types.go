// Package palette samples the colors a rendered page actually uses and
// collapses near-duplicates into a short ranked palette.
//
// Sampling runs against a Document, an abstract view of every element and
// its computed style. Hosts decide where that view comes from (a parsed file,
// a live webview) and run the SampleFunc in whatever context they need.
package palette

import (
	"context"
	"errors"
)

// MaxPaletteSize caps a sampled palette; 24 swatches fill a 6x4 grid.
const MaxPaletteSize = 24

var (
	ErrNoActiveTarget = errors.New("no active target to sample")
	ErrSamplingFailed = errors.New("failed to extract colors from target")
)

type Role string

const (
	RoleBackground Role = "background"
	RoleText       Role = "text"
	RoleBorder     Role = "border"
	RoleMixed      Role = "mixed"
)

type ExtractedColor struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
	Type  Role   `json:"type"`
}

// Style holds computed color values as the rendering engine reports them,
// e.g. "rgb(17, 17, 17)" or "rgba(0, 0, 0, 0)".
type Style struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

type Element interface {
	// Rendered reports whether the element currently has a layout box.
	Rendered() bool
	ComputedStyle() Style
}

type Document interface {
	// Elements returns every element at any depth in document order.
	Elements() []Element
}

// SampleFunc is the unit of work a Host runs against its document.
type SampleFunc func(Document) []ExtractedColor

// Target identifies the page a Host would sample.
type Target struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// Host owns access to a rendered document. Execute must not be called
// concurrently for the same target; it has no timeout of its own.
type Host interface {
	ActiveTarget(ctx context.Context) (Target, error)
	Execute(ctx context.Context, target Target, sample SampleFunc) ([]ExtractedColor, error)
}
