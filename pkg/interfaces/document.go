package interfaces

import "time"

// FrontMatter holds the metadata block parsed from the head of a markdown
// document. Well-known keys are promoted to fields; everything else lands
// in Custom. Raw preserves the full key set including promoted values.
type FrontMatter struct {
	Title   string         `json:"title,omitempty"`
	Slug    string         `json:"slug,omitempty"`
	Summary string         `json:"summary,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
	Author  string         `json:"author,omitempty"`
	Date    time.Time      `json:"date,omitempty"`
	Draft   bool           `json:"draft,omitempty"`
	Custom  map[string]any `json:"custom,omitempty"`
	Raw     map[string]any `json:"raw,omitempty"`
}

// Document is a markdown file loaded from disk, parsed but not yet
// rendered. Body is the markdown source without the frontmatter block.
type Document struct {
	FilePath     string      `json:"file_path"`
	FrontMatter  FrontMatter `json:"front_matter"`
	Body         []byte      `json:"body"`
	Checksum     []byte      `json:"checksum,omitempty"`
	LastModified time.Time   `json:"last_modified"`
}
