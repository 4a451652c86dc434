// Document is the central entity of the domain.
package core

// Metadata represents the front matter headers of a document as key-value pairs.
type Metadata map[string]string

// Document is the central entity of the domain.
// It represents one content file split into a metadata mapping and a raw body.
// Documents are immutable once loaded; the collection is read-only input for
// an external renderer.
type Document struct {
	ID       string
	Body     string
	Metadata Metadata
}

// Title returns the display title header, falling back to the ID when the
// document carries no title.
func (d Document) Title() string {
	if t, ok := d.Metadata["title"]; ok && t != "" {
		return t
	}
	return d.ID
}

// Layout returns the layout header, or the empty string when absent.
func (d Document) Layout() string {
	return d.Metadata["layout"]
}
