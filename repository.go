package notetool

// Repository is the interface for the storage backend.
//
// Usually this is the remote note collection accessed through the ReST API,
// but an in-memory implementation exists for local development.
type Repository interface {
	// List returns all notes in the collection.
	// The list is in no particular order - use SortNotes() if order matters.
	List() ([]Note, error)

	// Create adds a new note to the collection.
	// The ID of the given note is ignored; the returned note carries the ID
	// assigned by the backend, if the backend reports it.
	Create(n Note) (Note, error)

	// Update replaces title and body for the note with the given ID.
	Update(n Note) (Note, error)

	// Delete removes the note with the given ID.
	Delete(id int64) error
}
