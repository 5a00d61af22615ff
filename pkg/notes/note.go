package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Note represents a single note with its content, tags, and metadata.
type Note struct {
	ID        string    `json:"id"`         // Random UUID, assigned once at creation
	Title     string    `json:"title"`      // Free-form title (empty allowed)
	Content   string    `json:"content"`    // Note body
	Tags      []string  `json:"tags"`       // Tags in insertion order, never nil
	CreatedAt time.Time `json:"created_at"` // Set at creation, immutable
	UpdatedAt time.Time `json:"updated_at"` // Refreshed on every update
}

// NewNote creates a note with a freshly generated ID and both timestamps set
// to the current time. A nil tags slice becomes an empty slice so the field
// serializes as [] rather than null. NewNote never fails.
func NewNote(title, content string, tags []string) *Note {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	return &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update overwrites each field whose parameter is non-nil; nil means "leave
// unchanged", which is distinct from setting an empty value. UpdatedAt is
// refreshed unconditionally, even when no field changed in value.
func (n *Note) Update(title, content *string, tags []string) {
	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	if tags != nil {
		n.Tags = tags
	}
	n.UpdatedAt = time.Now()
}

// HasTag reports whether the note carries the exact tag (case-sensitive).
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// encode serializes the note as indented JSON, the on-disk note file format.
func (n *Note) encode() ([]byte, error) {
	b, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("notes: encode note %s: %w", n.ID, err)
	}
	return b, nil
}

// decodeNote parses a note file. Note files are written only by encode, so
// decoding is strict: unknown fields are rejected, and the fields whose
// absence is detectable (id, tags, timestamps) must be present. Defaulting
// of missing fields belongs to NewNote alone.
func decodeNote(data []byte) (*Note, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var n Note
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("notes: decode note: %w", err)
	}
	if n.ID == "" {
		return nil, fmt.Errorf("notes: decode note: missing id")
	}
	if n.Tags == nil {
		return nil, fmt.Errorf("notes: decode note %s: missing tags", n.ID)
	}
	if n.CreatedAt.IsZero() || n.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("notes: decode note %s: missing timestamps", n.ID)
	}
	return &n, nil
}
