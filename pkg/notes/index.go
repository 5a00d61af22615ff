package notes

import (
	"time"
)

// indexFile is the name of the index file inside the storage directory.
const indexFile = "index.json"

// Entry is the projection of a note kept in the index: everything needed for
// listing and tag filtering without reading the note file. Content is
// deliberately excluded to keep the index small.
//
// ID is the map key in the index file rather than a serialized field; it is
// filled in when entries are returned from List and Search.
type Entry struct {
	ID        string    `json:"-"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Values for SearchResult.Matched, naming the field a search query was
// found in.
const (
	MatchedTitle   = "title"
	MatchedContent = "content"
)

// SearchResult is an index entry annotated with where the query matched.
type SearchResult struct {
	Entry
	Matched string `json:"matched"`
}

// entryFor builds the index projection of a note.
func entryFor(n *Note) *Entry {
	return &Entry{
		Title:     n.Title,
		Tags:      n.Tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
