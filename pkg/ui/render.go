// Package ui renders notes and note listings as styled terminal text.
// It is a thin presentation layer: all filtering, ordering, and matching
// decisions are made by pkg/notes before anything reaches this package.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenticlabs/agentic-note/pkg/notes"
)

// Color palette, shared with the other ag tools.
var (
	accentPink  = lipgloss.Color("#FFB3BA")
	mintGreen   = lipgloss.Color("#A8E6CF")
	mutedGray   = lipgloss.Color("#6B7280")
	brightWhite = lipgloss.Color("#F9FAFB")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentPink).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	idStyle = lipgloss.NewStyle().
		Foreground(brightWhite)

	tagStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	matchStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Italic(true)
)

// timeLayout is how timestamps are shown to the user; the stored RFC 3339
// form is an implementation detail.
const timeLayout = "2006-01-02 15:04:05"

func tagsLine(tags []string) string {
	if len(tags) == 0 {
		return labelStyle.Render("No tags")
	}
	return tagStyle.Render(strings.Join(tags, ", "))
}

// RenderNote formats a full note for display: metadata header, blank line,
// then the content.
func RenderNote(n *notes.Note) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("ID:"), idStyle.Render(n.ID))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Title:"), titleStyle.Render(n.Title))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Tags:"), tagsLine(n.Tags))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Created:"), n.CreatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Updated:"), n.UpdatedAt.Format(timeLayout))
	b.WriteString("\n")
	b.WriteString(n.Content)

	return b.String()
}

// RenderList formats index entries the way `ag note list` prints them:
// one block per note with ID, title, tags, and last update time.
func RenderList(entries []notes.Entry) string {
	if len(entries) == 0 {
		return "No notes found."
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		writeEntry(&b, e)
	}
	return b.String()
}

// RenderSearchResults formats search hits like RenderList, with an extra
// line naming the field the query matched.
func RenderSearchResults(results []notes.SearchResult) string {
	if len(results) == 0 {
		return "No notes found."
	}

	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		writeEntry(&b, r.Entry)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Matched:"), matchStyle.Render(r.Matched))
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e notes.Entry) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("ID:"), idStyle.Render(e.ID))
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("Title:"), titleStyle.Render(e.Title))
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("Tags:"), tagsLine(e.Tags))
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("Updated:"), e.UpdatedAt.Format(timeLayout))
}

// RenderTags formats the unique-tag listing, one tag per line.
func RenderTags(tags []string) string {
	if len(tags) == 0 {
		return "No tags in use."
	}

	lines := make([]string, len(tags))
	for i, tag := range tags {
		lines[i] = tagStyle.Render(tag)
	}
	return strings.Join(lines, "\n")
}
