// Package reading defines the reading item entity and the normalization
// rules applied to incoming fields before they are persisted or rendered.
package reading

// Item represents one bookmark in the reading log.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	AddedAt string `json:"added_at"`
}

// Renderable reports whether the item carries enough data to appear in any
// output format. Items failing this check are dropped on read, not deleted.
func (i Item) Renderable() bool {
	return i.Title != "" && i.URL != ""
}
