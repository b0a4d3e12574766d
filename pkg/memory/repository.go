package memory

import (
	"sync"

	"github.com/akeil/notetool"
	"github.com/akeil/notetool/internal/errors"
	"github.com/akeil/notetool/internal/logging"
)

type repo struct {
	mx     sync.RWMutex
	notes  []notetool.Note
	nextID int64
}

// NewRepository creates a Repository that keeps notes in memory.
//
// The given notes are added in order and get fresh IDs, starting with 1.
func NewRepository(initial ...notetool.Note) notetool.Repository {
	r := &repo{
		notes:  make([]notetool.Note, 0, len(initial)),
		nextID: 1,
	}
	for _, n := range initial {
		r.add(n)
	}
	return r
}

func (r *repo) List() ([]notetool.Note, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	rv := make([]notetool.Note, len(r.notes))
	copy(rv, r.notes)
	return rv, nil
}

func (r *repo) Create(n notetool.Note) (notetool.Note, error) {
	r.mx.Lock()
	defer r.mx.Unlock()

	created := r.add(n)
	logging.Debug("Created note %d", created.ID)
	return created, nil
}

func (r *repo) Update(n notetool.Note) (notetool.Note, error) {
	r.mx.Lock()
	defer r.mx.Unlock()

	i := r.index(n.ID)
	if i < 0 {
		return notetool.Note{}, errors.NewNotFound("no note with id %d", n.ID)
	}

	r.notes[i].Title = n.Title
	r.notes[i].Body = n.Body
	logging.Debug("Updated note %d", n.ID)
	return r.notes[i], nil
}

func (r *repo) Delete(id int64) error {
	r.mx.Lock()
	defer r.mx.Unlock()

	i := r.index(id)
	if i < 0 {
		return errors.NewNotFound("no note with id %d", id)
	}

	r.notes = append(r.notes[:i], r.notes[i+1:]...)
	logging.Debug("Deleted note %d", id)
	return nil
}

// must hold the write lock
func (r *repo) add(n notetool.Note) notetool.Note {
	n.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, n)
	return n
}

// must hold the lock
func (r *repo) index(id int64) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
