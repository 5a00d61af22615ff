// Package notes provides the storage engine behind the ag-note command.
//
// Every note lives in its own JSON file inside a single storage directory,
// named <note-id>.json. Alongside the note files sits index.json, a mapping
// from note ID to a lightweight projection of the note (title, tags,
// timestamps) that lets listing and tag filtering run without reading any
// note bodies.
//
// The Manager is the sole mediator between notes and the disk. It loads the
// index once at construction and keeps it in memory as the source of truth
// for the life of the process. Mutating operations write the note file
// first, then rewrite the whole index file; both writes go through a
// temporary file and rename so a partial write never corrupts an existing
// file. There is no transaction across the two files: a process killed
// between them leaves an orphan note file that no operation can reach, or a
// stale index entry that Get treats as not-found.
//
// The package is safe for concurrent use within one process. Two processes
// (or two Managers) sharing a storage directory are not supported: there is
// no file locking and the in-memory index would go stale.
package notes
