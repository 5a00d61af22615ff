// Package main provides the ag-note CLI, the note-taking subcommand of the
// ag agent tooling. Notes are short tagged text snippets stored one file
// each under a shared directory, with an index file keeping listing and
// filtering fast.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agenticlabs/agentic-note/pkg/logging"
)

const version = "0.1.0"

func main() {
	logger, _ := logging.NewLogger("cli")
	defer logger.Close()

	a := &app{
		out: os.Stdout,
		err: os.Stderr,
		log: logger,
	}
	os.Exit(a.run(os.Args[1:]))
}

// run dispatches to the requested subcommand and returns the process exit
// code: 0 on success, 1 for not-found and usage errors, 2 for storage
// failures.
func (a *app) run(args []string) int {
	if len(args) == 0 {
		printUsage(a.err)
		return 1
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		printUsage(a.out)
		return 0
	case "version", "-version", "--version":
		fmt.Fprintf(a.out, "ag-note v%s\n", version)
		return 0
	case "create":
		return a.cmdCreate(rest)
	case "list":
		return a.cmdList(rest)
	case "view":
		return a.cmdView(rest)
	case "update":
		return a.cmdUpdate(rest)
	case "delete":
		return a.cmdDelete(rest)
	case "search":
		return a.cmdSearch(rest)
	case "tags":
		return a.cmdTags(rest)
	case "copy":
		return a.cmdCopy(rest)
	default:
		fmt.Fprintf(a.err, "ag-note: unknown command %q\n\n", cmd)
		printUsage(a.err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "ag-note - Agent's notebook providing note-taking capabilities\n\n")
	fmt.Fprintf(w, "Usage: ag note <command> [options] [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  create <title> <content>   Create a new note\n")
	fmt.Fprintf(w, "  list                       List notes\n")
	fmt.Fprintf(w, "  view <id>                  View a note\n")
	fmt.Fprintf(w, "  update <id>                Update a note\n")
	fmt.Fprintf(w, "  delete <id>                Delete a note\n")
	fmt.Fprintf(w, "  search <query>             Search notes by title and content\n")
	fmt.Fprintf(w, "  tags                       List all tags in use\n")
	fmt.Fprintf(w, "  copy <id>                  Copy a note's content to the clipboard\n")
	fmt.Fprintf(w, "  version                    Show version and exit\n\n")
	fmt.Fprintf(w, "Options are given before positional arguments. Every command accepts\n")
	fmt.Fprintf(w, "-dir to override the storage directory (default: ~/Agentic/shared/notes,\n")
	fmt.Fprintf(w, "also settable via %s or ~/.agentic/config.yaml).\n\n", envStorageDirHint)
	fmt.Fprintf(w, "Examples:\n")
	fmt.Fprintf(w, "  # Create a new note\n")
	fmt.Fprintf(w, "  ag note create -tags tag1,tag2 \"Note Title\" \"Note content goes here\"\n\n")
	fmt.Fprintf(w, "  # List all notes\n")
	fmt.Fprintf(w, "  ag note list\n\n")
	fmt.Fprintf(w, "  # List notes with a specific tag\n")
	fmt.Fprintf(w, "  ag note list -tag tag1\n\n")
	fmt.Fprintf(w, "  # View a note\n")
	fmt.Fprintf(w, "  ag note view note-id\n\n")
	fmt.Fprintf(w, "  # Update a note\n")
	fmt.Fprintf(w, "  ag note update -title \"New Title\" -tags tag1,tag3 note-id\n\n")
	fmt.Fprintf(w, "  # Delete a note\n")
	fmt.Fprintf(w, "  ag note delete note-id\n\n")
	fmt.Fprintf(w, "  # Search notes\n")
	fmt.Fprintf(w, "  ag note search \"query\"\n")
}
