package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/akeil/notetool"
)

func doLs(s settings, format, sortBy, match string) error {
	ctl := setupController(s, nil)

	err := ctl.Load()
	if err != nil {
		return err
	}

	notes := ctl.Notes()
	if match != "" {
		notes = notetool.Filtered(notes, notetool.MatchTitle(match))
	}
	notetool.SortNotes(notes, sortRule(sortBy))

	return printNotes(os.Stdout, notes, format)
}

func sortRule(name string) func(one, other notetool.Note) bool {
	switch name {
	case "title":
		return notetool.ByTitle
	default:
		return notetool.ByID
	}
}

// listEntry is the representation of a note for json and yaml output.
type listEntry struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

func printNotes(w io.Writer, notes []notetool.Note, format string) error {
	entries := make([]listEntry, len(notes))
	for i, n := range notes {
		entries[i] = listEntry{ID: n.ID, Title: n.Title, Body: n.Body}
	}

	switch format {
	case "list":
		showList(w, notes)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(entries)
		if err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format, choose one of 'list', 'json', 'yaml'")
	}

	return nil
}

func showList(w io.Writer, notes []notetool.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}

	fmt.Fprintln(w, "My Notes")
	fmt.Fprintln(w, "--------")
	for _, n := range notes {
		showNote(w, n, "")
	}
}

func showNote(w io.Writer, n notetool.Note, marker string) {
	fmt.Fprintf(w, "[%d] %v", n.ID, n.Title)
	if marker != "" {
		fmt.Fprintf(w, " %v", marker)
	}
	fmt.Fprintln(w)
	for _, line := range strings.Split(n.Body, "\n") {
		fmt.Fprintf(w, "    %v\n", line)
	}
}
