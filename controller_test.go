package notetool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

// fakeRepo counts calls and fails on request.
type fakeRepo struct {
	notes  []Note
	nextID int64

	calls map[string]int
	// called inside List, before it returns
	onList func()

	failList   bool
	failCreate bool
	failUpdate bool
	failDelete bool
}

func newFakeRepo(notes ...Note) *fakeRepo {
	r := &fakeRepo{
		notes:  notes,
		nextID: int64(len(notes)) + 1,
		calls:  make(map[string]int),
	}
	return r
}

func (r *fakeRepo) List() ([]Note, error) {
	r.calls["list"]++
	if r.onList != nil {
		r.onList()
	}
	if r.failList {
		return nil, errBackend
	}
	rv := make([]Note, len(r.notes))
	copy(rv, r.notes)
	return rv, nil
}

func (r *fakeRepo) Create(n Note) (Note, error) {
	r.calls["create"]++
	if r.failCreate {
		return Note{}, errBackend
	}
	n.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, n)
	return n, nil
}

func (r *fakeRepo) Update(n Note) (Note, error) {
	r.calls["update"]++
	if r.failUpdate {
		return Note{}, errBackend
	}
	for i, x := range r.notes {
		if x.ID == n.ID {
			r.notes[i] = n
			return n, nil
		}
	}
	return Note{}, errBackend
}

func (r *fakeRepo) Delete(id int64) error {
	r.calls["delete"]++
	if r.failDelete {
		return errBackend
	}
	for i, x := range r.notes {
		if x.ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return errBackend
}

func (r *fakeRepo) network() int {
	return r.calls["list"] + r.calls["create"] + r.calls["update"] + r.calls["delete"]
}

type recorder struct {
	received []Notification
}

func (r *recorder) Notify(n Notification) {
	r.received = append(r.received, n)
}

func (r *recorder) last() Notification {
	if len(r.received) == 0 {
		return Notification{}
	}
	return r.received[len(r.received)-1]
}

func answer(yes bool) (Confirmer, *int) {
	asked := 0
	return ConfirmerFunc(func(prompt string) (bool, error) {
		asked++
		return yes, nil
	}), &asked
}

func sample() []Note {
	return []Note{
		{ID: 1, Title: "Shopping", Body: "Milk, eggs"},
		{ID: 2, Title: "Ideas", Body: "Write a CLI"},
		{ID: 3, Title: "Todo", Body: "Call Bob"},
	}
}

func TestLoad(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	c := NewController(repo, rec, nil)

	require.NoError(t, c.Load())

	notes := c.Notes()
	require.Len(t, notes, 3)
	for i, n := range sample() {
		assert.Equal(t, n.Title, notes[i].Title)
		assert.Equal(t, n.Body, notes[i].Body)
	}
	assert.False(t, c.Loading())
	assert.Empty(t, rec.received)
}

func TestLoadingWhileListing(t *testing.T) {
	repo := newFakeRepo(sample()...)
	c := NewController(repo, nil, nil)
	assert.False(t, c.Loading())

	var during []bool
	repo.onList = func() {
		during = append(during, c.Loading())
	}

	require.NoError(t, c.Load())
	repo.failList = true
	require.Error(t, c.Load())

	assert.Equal(t, []bool{true, true}, during)
	assert.False(t, c.Loading())
}

func TestLoadingBlocked(t *testing.T) {
	repo := newFakeRepo(sample()...)
	c := NewController(repo, nil, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.onList = func() {
		close(entered)
		<-release
	}

	done := make(chan error)
	go func() {
		done <- c.Load()
	}()

	<-entered
	assert.True(t, c.Loading())
	assert.Empty(t, c.Notes())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Loading())
	assert.Len(t, c.Notes(), 3)
}

func TestLoadFailureKeepsList(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	c := NewController(repo, rec, nil)
	require.NoError(t, c.Load())

	repo.failList = true
	repo.notes = nil
	err := c.Load()

	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
	assert.Len(t, c.Notes(), 3, "previous list must be kept")
	assert.False(t, c.Loading())
	assert.Equal(t, Failure, rec.last().Kind)
	assert.Equal(t, MsgLoadFailed, rec.last().Message)
}

func TestNotesReturnsCopy(t *testing.T) {
	c := NewController(newFakeRepo(sample()...), nil, nil)
	require.NoError(t, c.Load())

	notes := c.Notes()
	notes[0].Title = "changed"

	n, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Shopping", n.Title)
}

func TestCreateValidation(t *testing.T) {
	drafts := []Draft{
		{Title: "", Body: "body"},
		{Title: "title", Body: ""},
		{Title: "   ", Body: "body"},
		{Title: "title", Body: "\t\n "},
	}

	for _, d := range drafts {
		repo := newFakeRepo()
		rec := &recorder{}
		c := NewController(repo, rec, nil)

		err := c.Create(d)

		assert.True(t, IsValidationError(err), "draft %+v", d)
		assert.Zero(t, repo.network(), "draft %+v must not cause a request", d)
		assert.Equal(t, Failure, rec.last().Kind)
		assert.Equal(t, MsgRequired, rec.last().Message)

		held, creating := c.Draft()
		assert.True(t, creating)
		assert.Equal(t, d, held)
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	c := NewController(repo, rec, nil)
	require.NoError(t, c.Load())

	c.BeginCreate()
	require.NoError(t, c.SetDraft(Draft{Title: "New", Body: "Text"}))
	require.NoError(t, c.SubmitDraft())

	assert.Equal(t, 1, repo.calls["create"])
	assert.Equal(t, 2, repo.calls["list"], "create must trigger a reload")
	assert.Equal(t, ModeIdle, c.Mode())
	d, creating := c.Draft()
	assert.False(t, creating)
	assert.Equal(t, Draft{}, d)
	assert.Len(t, c.Notes(), 4)
	assert.Equal(t, Notification{Kind: Success, Title: TitleSuccess, Message: MsgCreated}, rec.received[0])
}

func TestCreateFailureKeepsDraft(t *testing.T) {
	repo := newFakeRepo(sample()...)
	repo.failCreate = true
	rec := &recorder{}
	c := NewController(repo, rec, nil)

	d := Draft{Title: "New", Body: "Text"}
	err := c.Create(d)

	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
	assert.Zero(t, repo.calls["list"])
	assert.Equal(t, ModeCreating, c.Mode())
	held, creating := c.Draft()
	assert.True(t, creating)
	assert.Equal(t, d, held)
	assert.Equal(t, MsgCreateFailed, rec.last().Message)

	// retry succeeds
	repo.failCreate = false
	require.NoError(t, c.SubmitDraft())
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestCancelCreate(t *testing.T) {
	c := NewController(newFakeRepo(), nil, nil)

	c.ToggleCreate()
	require.Equal(t, ModeCreating, c.Mode())
	require.NoError(t, c.SetDraft(Draft{Title: "x", Body: "y"}))

	// opening again keeps the draft
	c.BeginCreate()
	d, _ := c.Draft()
	assert.Equal(t, "x", d.Title)

	c.CancelCreate()
	assert.Equal(t, ModeIdle, c.Mode())
	d, creating := c.Draft()
	assert.False(t, creating)
	assert.Equal(t, Draft{}, d)

	assert.Error(t, c.SetDraft(Draft{Title: "x"}))
	assert.Error(t, c.SubmitDraft())
}

func TestEditAndCreateExclusive(t *testing.T) {
	c := NewController(newFakeRepo(sample()...), nil, nil)
	require.NoError(t, c.Load())

	c.BeginCreate()
	require.NoError(t, c.SetDraft(Draft{Title: "draft"}))

	n, _ := c.Find(2)
	c.BeginEdit(n)
	assert.Equal(t, ModeEditing, c.Mode())
	_, creating := c.Draft()
	assert.False(t, creating)

	b, editing := c.Editing()
	require.True(t, editing)
	assert.Equal(t, EditBuffer{ID: 2, Title: "Ideas", Body: "Write a CLI"}, b)

	c.ToggleCreate()
	assert.Equal(t, ModeCreating, c.Mode())
	_, editing = c.Editing()
	assert.False(t, editing)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	c := NewController(repo, rec, nil)
	require.NoError(t, c.Load())

	n, _ := c.Find(3)
	c.BeginEdit(n)
	require.NoError(t, c.SetEdit(EditBuffer{ID: 3, Title: "Todo", Body: "Call Alice"}))
	require.NoError(t, c.SubmitEdit())

	assert.Equal(t, 1, repo.calls["update"])
	assert.Equal(t, 2, repo.calls["list"])
	assert.Equal(t, ModeIdle, c.Mode())
	updated, _ := c.Find(3)
	assert.Equal(t, "Call Alice", updated.Body)
	assert.Equal(t, MsgUpdated, rec.received[0].Message)
}

func TestUpdateValidation(t *testing.T) {
	repo := newFakeRepo(sample()...)
	c := NewController(repo, nil, nil)
	require.NoError(t, c.Load())

	err := c.Update(EditBuffer{ID: 1, Title: " ", Body: "x"})

	assert.True(t, IsValidationError(err))
	assert.Zero(t, repo.calls["update"])
	assert.Equal(t, ModeEditing, c.Mode())
}

func TestUpdateFailureKeepsEditMode(t *testing.T) {
	repo := newFakeRepo(sample()...)
	repo.failUpdate = true
	rec := &recorder{}
	c := NewController(repo, rec, nil)
	require.NoError(t, c.Load())

	n, _ := c.Find(1)
	c.BeginEdit(n)
	b := EditBuffer{ID: 1, Title: "Groceries", Body: "Milk"}
	require.NoError(t, c.SetEdit(b))

	err := c.SubmitEdit()

	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
	held, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, b, held)
	assert.Equal(t, MsgUpdateFailed, rec.last().Message)
	assert.Equal(t, 1, repo.calls["list"], "no reload after failure")

	// cached note unchanged
	cached, _ := c.Find(1)
	assert.Equal(t, "Shopping", cached.Title)
}

func TestSetEditWrongNote(t *testing.T) {
	c := NewController(newFakeRepo(sample()...), nil, nil)
	assert.Error(t, c.SetEdit(EditBuffer{ID: 1}))

	c.BeginEdit(Note{ID: 1, Title: "a", Body: "b"})
	assert.Error(t, c.SetEdit(EditBuffer{ID: 2}))

	c.CancelEdit()
	assert.Equal(t, ModeIdle, c.Mode())
	assert.Error(t, c.SubmitEdit())
}

func TestDeleteNotConfirmed(t *testing.T) {
	repo := newFakeRepo(sample()...)
	confirm, asked := answer(false)
	c := NewController(repo, nil, confirm)

	deleted, err := c.Delete(1)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, *asked)
	assert.Zero(t, repo.network())
}

func TestDeleteWithoutConfirmer(t *testing.T) {
	repo := newFakeRepo(sample()...)
	c := NewController(repo, nil, nil)

	deleted, err := c.Delete(1)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Zero(t, repo.network())
}

func TestDeleteConfirmError(t *testing.T) {
	repo := newFakeRepo(sample()...)
	c := NewController(repo, nil, ConfirmerFunc(func(string) (bool, error) {
		return false, errors.New("no terminal")
	}))

	deleted, err := c.Delete(1)

	assert.Error(t, err)
	assert.False(t, deleted)
	assert.Zero(t, repo.network())
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	confirm, asked := answer(true)
	c := NewController(repo, rec, confirm)
	require.NoError(t, c.Load())

	deleted, err := c.Delete(2)

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, *asked)
	assert.Equal(t, 1, repo.calls["delete"])
	assert.Equal(t, 2, repo.calls["list"], "delete must trigger a reload")
	assert.Len(t, c.Notes(), 2)
	_, found := c.Find(2)
	assert.False(t, found)
	assert.Equal(t, MsgDeleted, rec.received[0].Message)
}

func TestDeleteFailureLeavesListStale(t *testing.T) {
	repo := newFakeRepo(sample()...)
	repo.failDelete = true
	rec := &recorder{}
	c := NewController(repo, rec, AlwaysConfirm)
	require.NoError(t, c.Load())

	deleted, err := c.Delete(2)

	assert.False(t, deleted)
	assert.True(t, IsRequestFailure(err))
	assert.Len(t, c.Notes(), 3)
	assert.Equal(t, 1, repo.calls["list"])
	assert.Equal(t, Failure, rec.last().Kind)
	assert.Equal(t, MsgDeleteFailed, rec.last().Message)
}

func TestMutationReloadFailure(t *testing.T) {
	repo := newFakeRepo(sample()...)
	rec := &recorder{}
	c := NewController(repo, rec, nil)
	require.NoError(t, c.Load())

	repo.failList = true
	err := c.Create(Draft{Title: "a", Body: "b"})

	// the note was created, but the list could not be refreshed
	assert.True(t, IsRequestFailure(err))
	assert.Equal(t, ModeIdle, c.Mode())
	assert.Len(t, c.Notes(), 3)
	require.Len(t, rec.received, 2)
	assert.Equal(t, MsgCreated, rec.received[0].Message)
	assert.Equal(t, MsgLoadFailed, rec.received[1].Message)
}
