package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get, Update, and Delete when the ID is absent
// from the index or its note file is missing from disk.
var ErrNotFound = errors.New("notes: note not found")

// ErrCorruptIndex is returned by NewManager when an index file exists but
// cannot be parsed. The manager refuses to reinitialize over a corrupt
// index so that notes referenced only by valid note files are not lost.
var ErrCorruptIndex = errors.New("notes: index file is not valid JSON")

// Manager handles CRUD operations and search for notes persisted under a
// single storage directory. All operations are safe for concurrent use
// within one process; sharing a storage directory across processes is not
// supported.
type Manager struct {
	dir   string
	index map[string]*Entry
	mu    sync.RWMutex
}

// NewManager creates a manager bound to the given storage directory. The
// directory tree is created if absent. An existing index file is loaded
// into memory; otherwise an empty index is persisted immediately.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("notes: create storage dir %s: %w", dir, err)
	}

	m := &Manager{
		dir:   dir,
		index: make(map[string]*Entry),
	}
	if err := m.loadIndex(); err != nil {
		return nil, err
	}
	return m, nil
}

// Dir returns the storage directory the manager is bound to.
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) indexPath() string {
	return filepath.Join(m.dir, indexFile)
}

func (m *Manager) notePath(id string) string {
	return filepath.Join(m.dir, id+".json")
}

func (m *Manager) loadIndex() error {
	b, err := os.ReadFile(m.indexPath())
	if errors.Is(err, os.ErrNotExist) {
		return m.saveIndex()
	}
	if err != nil {
		return fmt.Errorf("notes: read index: %w", err)
	}

	var idx map[string]*Entry
	if err := json.Unmarshal(b, &idx); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptIndex, m.indexPath(), err)
	}
	if idx != nil {
		m.index = idx
	}
	return nil
}

// saveIndex rewrites the whole index file. Callers must hold the write lock.
func (m *Manager) saveIndex() error {
	b, err := json.MarshalIndent(m.index, "", "  ")
	if err != nil {
		return fmt.Errorf("notes: encode index: %w", err)
	}
	return writeFileAtomic(m.indexPath(), b)
}

// writeFileAtomic writes data through a temporary file and rename so a
// partial write never clobbers an existing file.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("notes: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("notes: rename %s: %w", path, err)
	}
	return nil
}

// Create builds a new note, persists it, and records it in the index. The
// note file is written before the index; an interruption between the two
// leaves an orphan file that no operation can reach.
func (m *Manager) Create(title, content string, tags []string) (*Note, error) {
	note := NewNote(title, content, tags)

	b, err := note.encode()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := writeFileAtomic(m.notePath(note.ID), b); err != nil {
		return nil, err
	}
	m.index[note.ID] = entryFor(note)
	if err := m.saveIndex(); err != nil {
		return nil, err
	}
	return note, nil
}

// Get retrieves a note by ID. It returns ErrNotFound when the ID is absent
// from the index or the note file is missing: a stale index entry behaves
// the same as a note that never existed.
func (m *Manager) Get(id string) (*Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.get(id)
}

// get assumes the caller holds at least a read lock.
func (m *Manager) get(id string) (*Note, error) {
	if _, ok := m.index[id]; !ok {
		return nil, ErrNotFound
	}

	b, err := os.ReadFile(m.notePath(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("notes: read note %s: %w", id, err)
	}
	return decodeNote(b)
}

// Update loads a note, applies the non-nil field changes, rewrites the note
// file, and refreshes the index entry's title, tags, and updated_at. The
// entry's created_at is left untouched.
func (m *Manager) Update(id string, title, content *string, tags []string) (*Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, err := m.get(id)
	if err != nil {
		return nil, err
	}
	note.Update(title, content, tags)

	b, err := note.encode()
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(m.notePath(id), b); err != nil {
		return nil, err
	}

	entry := m.index[id]
	entry.Title = note.Title
	entry.Tags = note.Tags
	entry.UpdatedAt = note.UpdatedAt
	if err := m.saveIndex(); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note's file and index entry. A missing file is tolerated
// so that stale index entries can still be cleaned up. Returns ErrNotFound
// when the ID is not in the index.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[id]; !ok {
		return ErrNotFound
	}

	if err := os.Remove(m.notePath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("notes: remove note %s: %w", id, err)
	}
	delete(m.index, id)
	return m.saveIndex()
}

// List returns index entries sorted by UpdatedAt, most recent first. It
// scans only the in-memory index and never touches note files. A non-empty
// tag restricts the result to entries whose tags contain it verbatim
// (exact, case-sensitive match).
func (m *Manager) List(tag string) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Entry
	for id, entry := range m.index {
		if tag != "" && !containsTag(entry.Tags, tag) {
			continue
		}
		e := *entry
		e.ID = id
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result
}

// Search finds notes whose title or content contains the query
// (case-insensitive substring). A title hit short-circuits: the note file
// is read only when the title does not match. Notes whose file has gone
// missing are skipped. Results are sorted by UpdatedAt, most recent first.
func (m *Manager) Search(query string) []SearchResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)

	var results []SearchResult
	for id, entry := range m.index {
		e := *entry
		e.ID = id

		if strings.Contains(strings.ToLower(entry.Title), q) {
			results = append(results, SearchResult{Entry: e, Matched: MatchedTitle})
			continue
		}

		note, err := m.get(id)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(note.Content), q) {
			results = append(results, SearchResult{Entry: e, Matched: MatchedContent})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].UpdatedAt.After(results[j].UpdatedAt)
	})

	return results
}

// Tags returns all unique tags currently in use, sorted alphabetically.
func (m *Manager) Tags() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tagSet := make(map[string]bool)
	for _, entry := range m.index {
		for _, tag := range entry.Tags {
			tagSet[tag] = true
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// Count returns the number of indexed notes.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.index)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
