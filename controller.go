package notetool

import (
	"fmt"
	"sync"

	"github.com/akeil/notetool/internal/errors"
	"github.com/akeil/notetool/internal/logging"
)

// Controller holds the local view of a note collection and the state of the
// (single) editor for that view.
//
// The list of notes is never patched locally. After every successful change
// the complete collection is fetched again from the Repository, so the view
// always shows what the backend has.
//
// Requests are not coordinated. If several operations are running at the
// same time, the last Load to complete determines the list.
type Controller struct {
	repo    Repository
	notify  Notifier
	confirm Confirmer

	mx      sync.Mutex
	notes   []Note
	loading bool
	mode    Mode
	draft   Draft
	edit    EditBuffer
}

// NewController sets up a controller for the given repository.
//
// The Notifier receives a message for every outcome the user should know
// about. The Confirmer is asked before a note is deleted; if it is nil,
// deletions are always declined.
func NewController(repo Repository, n Notifier, c Confirmer) *Controller {
	if n == nil {
		n = NotifierFunc(func(Notification) {})
	}
	if c == nil {
		c = ConfirmerFunc(func(string) (bool, error) {
			return false, nil
		})
	}

	return &Controller{
		repo:    repo,
		notify:  n,
		confirm: c,
		notes:   make([]Note, 0),
	}
}

// Load fetches the full collection and replaces the local list.
//
// If the request fails, the previous list is kept.
func (c *Controller) Load() error {
	c.mx.Lock()
	c.loading = true
	c.mx.Unlock()

	notes, err := c.repo.List()

	c.mx.Lock()
	c.loading = false
	if err == nil {
		c.notes = make([]Note, len(notes))
		copy(c.notes, notes)
	}
	c.mx.Unlock()

	if err != nil {
		logging.Error("Error fetching notes: %v", err)
		c.notify.Notify(failed(MsgLoadFailed))
		return asFailure(err, "load notes")
	}

	logging.Debug("Loaded %d notes", len(notes))
	return nil
}

// Create validates the given draft and submits it as a new note.
//
// The controller switches to "create" mode with the given draft. The draft is
// kept if it is invalid or if the request fails, so the user can correct it
// and try again. After a successful request, the draft is discarded and the
// list is reloaded; the returned error is the result of that reload.
func (c *Controller) Create(d Draft) error {
	c.mx.Lock()
	c.enterCreating(d)
	c.mx.Unlock()

	err := d.Validate()
	if err != nil {
		c.notify.Notify(failed(MsgRequired))
		return err
	}

	_, err = c.repo.Create(Note{Title: d.Title, Body: d.Body})
	if err != nil {
		logging.Error("Error creating note: %v", err)
		c.notify.Notify(failed(MsgCreateFailed))
		return asFailure(err, "create note")
	}

	c.notify.Notify(succeeded(MsgCreated))

	c.mx.Lock()
	// the user may have moved on while the request was running
	if c.mode == ModeCreating {
		c.reset()
	}
	c.mx.Unlock()

	return c.Load()
}

// SubmitDraft creates a note from the current draft.
func (c *Controller) SubmitDraft() error {
	c.mx.Lock()
	if c.mode != ModeCreating {
		c.mx.Unlock()
		return fmt.Errorf("no note is being created")
	}
	d := c.draft
	c.mx.Unlock()

	return c.Create(d)
}

// Update validates the given buffer and saves it to the note with the same
// ID.
//
// Like Create, the controller stays in "edit" mode with the buffer intact if
// validation or the request fails. On success, edit mode ends and the list
// is reloaded.
func (c *Controller) Update(b EditBuffer) error {
	c.mx.Lock()
	c.enterEditing(b)
	c.mx.Unlock()

	err := b.Validate()
	if err != nil {
		c.notify.Notify(failed(MsgRequired))
		return err
	}

	_, err = c.repo.Update(b.Note())
	if err != nil {
		logging.Error("Error updating note %d: %v", b.ID, err)
		c.notify.Notify(failed(MsgUpdateFailed))
		return asFailure(err, "update note %d", b.ID)
	}

	c.notify.Notify(succeeded(MsgUpdated))

	c.mx.Lock()
	if c.mode == ModeEditing && c.edit.ID == b.ID {
		c.reset()
	}
	c.mx.Unlock()

	return c.Load()
}

// SubmitEdit saves the current edit buffer.
func (c *Controller) SubmitEdit() error {
	c.mx.Lock()
	if c.mode != ModeEditing {
		c.mx.Unlock()
		return fmt.Errorf("no note is being edited")
	}
	b := c.edit
	c.mx.Unlock()

	return c.Update(b)
}

// Delete removes the note with the given ID after the user confirmed it.
//
// Returns false if the user declined; no request is made in that case.
// If the request fails, the local list is left as it is until the next
// successful Load.
func (c *Controller) Delete(id int64) (bool, error) {
	ok, err := c.confirm.Confirm(PromptDelete)
	if err != nil {
		return false, errors.Wrap(err, "confirm delete")
	}
	if !ok {
		logging.Debug("Delete note %d not confirmed", id)
		return false, nil
	}

	err = c.repo.Delete(id)
	if err != nil {
		logging.Error("Error deleting note %d: %v", id, err)
		c.notify.Notify(failed(MsgDeleteFailed))
		return false, asFailure(err, "delete note %d", id)
	}

	c.notify.Notify(succeeded(MsgDeleted))

	return true, c.Load()
}

// BeginCreate opens an empty draft.
// Any edit in progress is discarded. If a draft is already open, it is kept.
func (c *Controller) BeginCreate() {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode == ModeCreating {
		return
	}
	c.enterCreating(Draft{})
}

// CancelCreate discards the current draft.
func (c *Controller) CancelCreate() {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode == ModeCreating {
		c.reset()
	}
}

// ToggleCreate opens an empty draft or discards the current one.
func (c *Controller) ToggleCreate() {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode == ModeCreating {
		c.reset()
	} else {
		c.enterCreating(Draft{})
	}
}

// SetDraft replaces title and body of the current draft.
func (c *Controller) SetDraft(d Draft) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode != ModeCreating {
		return fmt.Errorf("no note is being created")
	}
	c.draft = d
	return nil
}

// BeginEdit starts editing the given note with its current title and body.
// A draft or another edit in progress is discarded.
func (c *Controller) BeginEdit(n Note) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.enterEditing(EditBuffer{
		ID:    n.ID,
		Title: n.Title,
		Body:  n.Body,
	})
}

// CancelEdit discards the current edit buffer.
func (c *Controller) CancelEdit() {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode == ModeEditing {
		c.reset()
	}
}

// SetEdit replaces title and body in the current edit buffer.
// The buffer must refer to the note that is being edited.
func (c *Controller) SetEdit(b EditBuffer) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.mode != ModeEditing {
		return fmt.Errorf("no note is being edited")
	}
	if c.edit.ID != b.ID {
		return fmt.Errorf("note %d is being edited, not %d", c.edit.ID, b.ID)
	}
	c.edit = b
	return nil
}

// Notes returns a copy of the current list, in the order the backend
// returned it.
func (c *Controller) Notes() []Note {
	c.mx.Lock()
	defer c.mx.Unlock()

	rv := make([]Note, len(c.notes))
	copy(rv, c.notes)
	return rv
}

// Find looks up a note in the current list.
func (c *Controller) Find(id int64) (Note, bool) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for _, n := range c.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Loading tells if a Load is in progress.
func (c *Controller) Loading() bool {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.loading
}

// Mode tells whether a note is being created or edited.
func (c *Controller) Mode() Mode {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.mode
}

// Draft returns the current draft and true if a note is being created.
func (c *Controller) Draft() (Draft, bool) {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.draft, c.mode == ModeCreating
}

// Editing returns the current edit buffer and true if a note is being
// edited.
func (c *Controller) Editing() (EditBuffer, bool) {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.edit, c.mode == ModeEditing
}

// must hold the lock
func (c *Controller) enterCreating(d Draft) {
	c.mode = ModeCreating
	c.draft = d
	c.edit = EditBuffer{}
}

// must hold the lock
func (c *Controller) enterEditing(b EditBuffer) {
	c.mode = ModeEditing
	c.edit = b
	c.draft = Draft{}
}

// must hold the lock
func (c *Controller) reset() {
	c.mode = ModeIdle
	c.draft = Draft{}
	c.edit = EditBuffer{}
}

// asFailure makes sure that any error from the repository is reported as a
// request failure.
func asFailure(err error, msg string, v ...interface{}) error {
	if errors.IsRequestFailure(err) {
		return err
	}
	return errors.NewRequestFailure(err, msg, v...)
}
