package notetool

import (
	"strings"

	"github.com/akeil/notetool/internal/errors"
)

// Note is a single entry in the remote note collection.
// Notes are owned by the service; the ID is assigned by the server.
type Note struct {
	ID    int64
	Title string
	Body  string
}

// Draft holds the unsaved content for a note that is being created.
type Draft struct {
	Title string
	Body  string
}

// Validate checks that both title and body have some content.
func (d Draft) Validate() error {
	return validateContent(d.Title, d.Body)
}

// EditBuffer holds the unsaved content for an existing note that is being
// edited.
type EditBuffer struct {
	ID    int64
	Title string
	Body  string
}

// Validate checks that both title and body have some content.
func (b EditBuffer) Validate() error {
	return validateContent(b.Title, b.Body)
}

// Note returns the note as it should look after the edit was saved.
func (b EditBuffer) Note() Note {
	return Note{
		ID:    b.ID,
		Title: b.Title,
		Body:  b.Body,
	}
}

// Mode is the state of the single editor slot in the note list.
// At most one of "create" and "edit" is active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "UNKNOWN"
	}
}

func validateContent(title, body string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return errors.NewValidationError(MsgRequired)
	}
	return nil
}
