package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/akeil/notetool"
)

const shellHelp = `Commands:
  ls              show all notes
  reload          fetch the notes again
  new             start a new note
  edit <id>       edit a note
  title <text>    set the title of the note being created or edited
  text <text>     set the text of the note being created or edited
  save            save the note being created or edited
  cancel          discard the note being created or edited
  rm <id>         delete a note
  help            show this text
  quit            leave the session`

func doShell(s settings) error {
	sh := newShell(setupRepo(s), os.Stdin, os.Stdout)
	return sh.run()
}

// shell is an interactive, line based session on a note collection.
// Input is read line by line; answers to confirmation questions are read from
// the same input.
type shell struct {
	ctl *notetool.Controller
	in  *bufio.Scanner
	out io.Writer
}

func newShell(repo notetool.Repository, in io.Reader, out io.Writer) *shell {
	sh := &shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
	sh.ctl = notetool.NewController(repo, consoleNotifier(out), notetool.ConfirmerFunc(sh.confirm))
	return sh
}

func (sh *shell) run() error {
	fmt.Fprintf(sh.out, "%v loading notes\n", ellipsis)
	if sh.ctl.Load() == nil {
		sh.render()
	}

	for {
		fmt.Fprint(sh.out, sh.prompt())
		if !sh.in.Scan() {
			fmt.Fprintln(sh.out)
			return sh.in.Err()
		}

		line := strings.TrimSpace(sh.in.Text())
		if line == "" {
			continue
		}

		if sh.exec(line) {
			return nil
		}
	}
}

func (sh *shell) prompt() string {
	switch sh.ctl.Mode() {
	case notetool.ModeCreating:
		return "new note> "
	case notetool.ModeEditing:
		b, _ := sh.ctl.Editing()
		return fmt.Sprintf("edit %d> ", b.ID)
	default:
		return "notes> "
	}
}

// exec runs a single command line. Returns true if the session should end.
func (sh *shell) exec(line string) bool {
	cmd, arg := splitCommand(line)

	switch cmd {
	case "ls", "list":
		sh.render()
	case "reload":
		if sh.ctl.Load() == nil {
			sh.render()
		}
	case "new":
		sh.ctl.BeginCreate()
		fmt.Fprintln(sh.out, "Creating a new note, set 'title' and 'text', then 'save' or 'cancel'.")
	case "edit":
		sh.edit(arg)
	case "title":
		sh.set(arg, "")
	case "text":
		sh.set("", arg)
	case "save":
		sh.save()
	case "cancel":
		sh.ctl.CancelCreate()
		sh.ctl.CancelEdit()
	case "rm", "delete":
		sh.delete(arg)
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(sh.out, "Unknown command %q, try 'help'.\n", cmd)
	}

	return false
}

func (sh *shell) edit(arg string) {
	id, ok := sh.parseID(arg)
	if !ok {
		return
	}

	n, found := sh.ctl.Find(id)
	if !found {
		fmt.Fprintf(sh.out, "No note with id %d.\n", id)
		return
	}

	sh.ctl.BeginEdit(n)
	showNote(sh.out, n, "(editing)")
}

// set changes title or text (whichever is not empty) of the current draft or
// edit buffer.
func (sh *shell) set(title, text string) {
	if title == "" && text == "" {
		fmt.Fprintln(sh.out, "Missing value.")
		return
	}

	var err error
	switch sh.ctl.Mode() {
	case notetool.ModeCreating:
		d, _ := sh.ctl.Draft()
		if title != "" {
			d.Title = title
		}
		if text != "" {
			d.Body = text
		}
		err = sh.ctl.SetDraft(d)
	case notetool.ModeEditing:
		b, _ := sh.ctl.Editing()
		if title != "" {
			b.Title = title
		}
		if text != "" {
			b.Body = text
		}
		err = sh.ctl.SetEdit(b)
	default:
		fmt.Fprintln(sh.out, "Nothing to change, use 'new' or 'edit <id>' first.")
	}

	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) save() {
	var err error
	switch sh.ctl.Mode() {
	case notetool.ModeCreating:
		err = sh.ctl.SubmitDraft()
	case notetool.ModeEditing:
		err = sh.ctl.SubmitEdit()
	default:
		fmt.Fprintln(sh.out, "Nothing to save.")
		return
	}

	// failures have been reported through notifications
	if err == nil {
		sh.render()
	}
}

func (sh *shell) delete(arg string) {
	id, ok := sh.parseID(arg)
	if !ok {
		return
	}

	deleted, err := sh.ctl.Delete(id)
	switch {
	case deleted && err == nil:
		sh.render()
	case !deleted && err == nil:
		fmt.Fprintln(sh.out, "Not deleted.")
	case !notetool.IsRequestFailure(err):
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(sh.out, "Invalid note id %q.\n", arg)
		return 0, false
	}
	return id, true
}

// confirm asks a question and reads the answer from the next input line.
func (sh *shell) confirm(question string) (bool, error) {
	fmt.Fprintf(sh.out, "%v [y/N] ", question)
	if !sh.in.Scan() {
		err := sh.in.Err()
		if err == nil {
			err = io.EOF
		}
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(sh.in.Text()))
	return answer == "y" || answer == "yes", nil
}

// render shows the current list along with the note that is being created
// or edited.
func (sh *shell) render() {
	if d, creating := sh.ctl.Draft(); creating {
		fmt.Fprintln(sh.out, "New note:")
		showNote(sh.out, notetool.Note{Title: d.Title, Body: d.Body}, "(new)")
		fmt.Fprintln(sh.out)
	}

	notes := sh.ctl.Notes()
	if len(notes) == 0 {
		fmt.Fprintln(sh.out, "No notes found.")
		fmt.Fprintln(sh.out, "Use 'new' to create your first note.")
		return
	}

	b, editing := sh.ctl.Editing()
	for _, n := range notes {
		if editing && n.ID == b.ID {
			showNote(sh.out, b.Note(), "(editing)")
		} else {
			showNote(sh.out, n, "")
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}
