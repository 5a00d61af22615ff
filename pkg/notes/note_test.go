package notes

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewNote(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		tags    []string
	}{
		{
			name:    "with tags",
			title:   "Shopping",
			content: "milk, eggs",
			tags:    []string{"errands", "home"},
		},
		{
			name:    "nil tags default to empty",
			title:   "Untagged",
			content: "body",
			tags:    nil,
		},
		{
			name:    "empty title allowed",
			title:   "",
			content: "body",
			tags:    []string{"misc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := NewNote(tt.title, tt.content, tt.tags)

			if note.ID == "" {
				t.Error("expected non-empty ID")
			}
			if _, err := uuid.Parse(note.ID); err != nil {
				t.Errorf("ID should be a valid UUID, got %q: %v", note.ID, err)
			}

			if note.Title != tt.title {
				t.Errorf("title mismatch: got %q, want %q", note.Title, tt.title)
			}
			if note.Content != tt.content {
				t.Errorf("content mismatch: got %q, want %q", note.Content, tt.content)
			}

			if note.Tags == nil {
				t.Fatal("tags should never be nil after construction")
			}
			if tt.tags == nil && len(note.Tags) != 0 {
				t.Errorf("omitted tags should default to empty, got %v", note.Tags)
			}

			if !note.CreatedAt.Equal(note.UpdatedAt) {
				t.Errorf("created_at and updated_at should be equal at creation: %v vs %v",
					note.CreatedAt, note.UpdatedAt)
			}
			if note.CreatedAt.IsZero() {
				t.Error("created_at should be set")
			}
		})
	}
}

func TestNewNoteUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		note := NewNote("title", "content", nil)
		if seen[note.ID] {
			t.Fatalf("duplicate ID generated: %s", note.ID)
		}
		seen[note.ID] = true
	}
}

func TestNoteUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("title only", func(t *testing.T) {
		note := NewNote("Old title", "Old content", []string{"a"})
		before := note.UpdatedAt

		note.Update(strPtr("New title"), nil, nil)

		if note.Title != "New title" {
			t.Errorf("title not updated: got %q", note.Title)
		}
		if note.Content != "Old content" {
			t.Errorf("content should be unchanged, got %q", note.Content)
		}
		if len(note.Tags) != 1 || note.Tags[0] != "a" {
			t.Errorf("tags should be unchanged, got %v", note.Tags)
		}
		if note.UpdatedAt.Before(before) {
			t.Error("updated_at should not move backwards")
		}
	})

	t.Run("content only", func(t *testing.T) {
		note := NewNote("Title", "Old content", nil)

		note.Update(nil, strPtr("New content"), nil)

		if note.Content != "New content" {
			t.Errorf("content not updated: got %q", note.Content)
		}
		if note.Title != "Title" {
			t.Errorf("title should be unchanged, got %q", note.Title)
		}
	})

	t.Run("tags only", func(t *testing.T) {
		note := NewNote("Title", "Content", []string{"old"})

		note.Update(nil, nil, []string{"new", "tags"})

		if len(note.Tags) != 2 || note.Tags[0] != "new" || note.Tags[1] != "tags" {
			t.Errorf("tags not updated: got %v", note.Tags)
		}
		if note.Title != "Title" || note.Content != "Content" {
			t.Error("title and content should be unchanged")
		}
	})

	t.Run("empty string is a real value, not absence", func(t *testing.T) {
		note := NewNote("Title", "Content", nil)

		note.Update(strPtr(""), nil, nil)

		if note.Title != "" {
			t.Errorf("title should be set to empty string, got %q", note.Title)
		}
		if note.Content != "Content" {
			t.Error("content should be unchanged")
		}
	})

	t.Run("no-op update still refreshes updated_at", func(t *testing.T) {
		note := NewNote("Title", "Content", nil)
		created := note.CreatedAt

		note.Update(nil, nil, nil)

		if note.UpdatedAt.Before(created) {
			t.Error("updated_at should not move backwards")
		}
		if !note.CreatedAt.Equal(created) {
			t.Error("created_at must never change")
		}
	})
}

func TestNoteRoundTrip(t *testing.T) {
	original := NewNote("Apple Pie Recipe", "Needs sugar and apples.", []string{"recipes", "baking"})

	b, err := original.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeNote(b)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.ID != original.ID {
		t.Errorf("id mismatch: got %q, want %q", decoded.ID, original.ID)
	}
	if decoded.Title != original.Title {
		t.Errorf("title mismatch: got %q, want %q", decoded.Title, original.Title)
	}
	if decoded.Content != original.Content {
		t.Errorf("content mismatch: got %q, want %q", decoded.Content, original.Content)
	}
	if len(decoded.Tags) != len(original.Tags) {
		t.Fatalf("tags mismatch: got %v, want %v", decoded.Tags, original.Tags)
	}
	for i := range original.Tags {
		if decoded.Tags[i] != original.Tags[i] {
			t.Errorf("tag %d mismatch: got %q, want %q", i, decoded.Tags[i], original.Tags[i])
		}
	}
	if !decoded.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("created_at mismatch: got %v, want %v", decoded.CreatedAt, original.CreatedAt)
	}
	if !decoded.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("updated_at mismatch: got %v, want %v", decoded.UpdatedAt, original.UpdatedAt)
	}
}

func TestDecodeNoteStrict(t *testing.T) {
	valid := NewNote("Title", "Content", []string{"tag"})
	validJSON, err := valid.encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name:     "invalid json",
			data:     "{not json",
			errorMsg: "decode note",
		},
		{
			name:     "unknown field",
			data:     `{"id":"x","title":"t","content":"c","tags":[],"created_at":"2024-01-02T10:00:00Z","updated_at":"2024-01-02T10:00:00Z","extra":true}`,
			errorMsg: "unknown field",
		},
		{
			name:     "missing id",
			data:     `{"title":"t","content":"c","tags":[],"created_at":"2024-01-02T10:00:00Z","updated_at":"2024-01-02T10:00:00Z"}`,
			errorMsg: "missing id",
		},
		{
			name:     "missing tags",
			data:     `{"id":"x","title":"t","content":"c","created_at":"2024-01-02T10:00:00Z","updated_at":"2024-01-02T10:00:00Z"}`,
			errorMsg: "missing tags",
		},
		{
			name:     "missing timestamps",
			data:     `{"id":"x","title":"t","content":"c","tags":[]}`,
			errorMsg: "missing timestamps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeNote([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}

	t.Run("valid note decodes", func(t *testing.T) {
		if _, err := decodeNote(validJSON); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestNoteHasTag(t *testing.T) {
	note := NewNote("Title", "Content", []string{"alpha", "Beta"})

	tests := []struct {
		tag  string
		want bool
	}{
		{"alpha", true},
		{"Beta", true},
		{"beta", false}, // case-sensitive
		{"alph", false}, // exact, not substring
		{"", false},
	}

	for _, tt := range tests {
		if got := note.HasTag(tt.tag); got != tt.want {
			t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
