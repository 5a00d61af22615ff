package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/agenticlabs/agentic-note/pkg/config"
	"github.com/agenticlabs/agentic-note/pkg/logging"
	"github.com/agenticlabs/agentic-note/pkg/notes"
	"github.com/agenticlabs/agentic-note/pkg/ui"
)

const envStorageDirHint = config.EnvStorageDir

// app carries the collaborators every command handler needs. Handlers
// return the process exit code.
type app struct {
	out io.Writer
	err io.Writer
	log *logging.Logger

	// dir overrides storage-directory resolution when non-empty. Normally
	// empty; tests set it to a temp directory.
	dir string
}

// openManager resolves the storage directory and constructs the engine.
func (a *app) openManager(flagDir string) (*notes.Manager, error) {
	override := flagDir
	if override == "" {
		override = a.dir
	}
	dir, err := config.ResolveStorageDir(override)
	if err != nil {
		return nil, err
	}
	return notes.NewManager(dir)
}

// newFlagSet builds a subcommand flag set with the shared -dir option.
func (a *app) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	dir := fs.String("dir", "", "Storage directory override")
	return fs, dir
}

// parseTags splits a comma-separated tag list, trimming whitespace and
// dropping empty entries. An empty input yields nil, which callers treat as
// "no tags supplied".
func parseTags(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// fail prints and logs a storage-level failure.
func (a *app) fail(err error) int {
	a.log.Errorf("%v", err)
	fmt.Fprintf(a.err, "ag-note: %v\n", err)
	return 2
}

func (a *app) notFound(id string) int {
	a.log.Infof("note %s not found", id)
	fmt.Fprintf(a.err, "Note with ID %s not found.\n", id)
	return 1
}

func (a *app) cmdCreate(args []string) int {
	fs, dir := a.newFlagSet("create")
	tags := fs.String("tags", "", "Comma-separated list of tags")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(a.err, "usage: ag note create [-tags t1,t2] <title> <content>")
		return 1
	}

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	note, err := m.Create(fs.Arg(0), fs.Arg(1), parseTags(*tags))
	if err != nil {
		return a.fail(err)
	}

	a.log.Infof("created note %s", note.ID)
	fmt.Fprintf(a.out, "Note created with ID: %s\n", note.ID)
	return 0
}

func (a *app) cmdList(args []string) int {
	fs, dir := a.newFlagSet("list")
	tag := fs.String("tag", "", "Filter notes by tag")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	entries := m.List(*tag)
	a.log.Debugf("listed %d notes (tag=%q)", len(entries), *tag)
	fmt.Fprintln(a.out, ui.RenderList(entries))
	return 0
}

func (a *app) cmdView(args []string) int {
	fs, dir := a.newFlagSet("view")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.err, "usage: ag note view <id>")
		return 1
	}
	id := fs.Arg(0)

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	note, err := m.Get(id)
	if errors.Is(err, notes.ErrNotFound) {
		return a.notFound(id)
	}
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, ui.RenderNote(note))
	return 0
}

func (a *app) cmdUpdate(args []string) int {
	fs, dir := a.newFlagSet("update")
	title := fs.String("title", "", "New title for the note")
	content := fs.String("content", "", "New content for the note")
	tags := fs.String("tags", "", "Comma-separated list of tags")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.err, "usage: ag note update [-title t] [-content c] [-tags t1,t2] <id>")
		return 1
	}
	id := fs.Arg(0)

	// A flag the user did not pass means "leave the field unchanged",
	// which is different from passing an empty value.
	var newTitle, newContent *string
	var newTags []string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			newTitle = title
		case "content":
			newContent = content
		case "tags":
			newTags = parseTags(*tags)
		}
	})

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	if _, err := m.Update(id, newTitle, newContent, newTags); errors.Is(err, notes.ErrNotFound) {
		return a.notFound(id)
	} else if err != nil {
		return a.fail(err)
	}

	a.log.Infof("updated note %s", id)
	fmt.Fprintf(a.out, "Note %s updated successfully.\n", id)
	return 0
}

func (a *app) cmdDelete(args []string) int {
	fs, dir := a.newFlagSet("delete")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.err, "usage: ag note delete <id>")
		return 1
	}
	id := fs.Arg(0)

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	if err := m.Delete(id); errors.Is(err, notes.ErrNotFound) {
		return a.notFound(id)
	} else if err != nil {
		return a.fail(err)
	}

	a.log.Infof("deleted note %s", id)
	fmt.Fprintf(a.out, "Note %s deleted successfully.\n", id)
	return 0
}

func (a *app) cmdSearch(args []string) int {
	fs, dir := a.newFlagSet("search")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.err, "usage: ag note search <query>")
		return 1
	}
	query := fs.Arg(0)

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	results := m.Search(query)
	a.log.Debugf("search %q matched %d notes", query, len(results))

	// An empty search is still a successful run.
	if len(results) == 0 {
		fmt.Fprintf(a.out, "No notes found matching '%s'.\n", query)
		return 0
	}

	fmt.Fprintf(a.out, "Found %d notes matching '%s':\n", len(results), query)
	fmt.Fprintln(a.out, ui.RenderSearchResults(results))
	return 0
}

func (a *app) cmdTags(args []string) int {
	fs, dir := a.newFlagSet("tags")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, ui.RenderTags(m.Tags()))
	return 0
}

func (a *app) cmdCopy(args []string) int {
	fs, dir := a.newFlagSet("copy")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.err, "usage: ag note copy <id>")
		return 1
	}
	id := fs.Arg(0)

	m, err := a.openManager(*dir)
	if err != nil {
		return a.fail(err)
	}

	note, err := m.Get(id)
	if errors.Is(err, notes.ErrNotFound) {
		return a.notFound(id)
	}
	if err != nil {
		return a.fail(err)
	}

	if err := clipboard.WriteAll(note.Content); err != nil {
		return a.fail(fmt.Errorf("copy to clipboard: %w", err))
	}

	a.log.Infof("copied note %s to clipboard", id)
	fmt.Fprintf(a.out, "Note %s content copied to clipboard.\n", id)
	return 0
}
