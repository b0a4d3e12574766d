package api

import (
	"github.com/akeil/notetool"
)

// Item is a note as it is sent by the service.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"titulo"`
	Text  string `json:"texto"`
}

// newItem is the payload to create or update a note.
type newItem struct {
	Title string `json:"titulo"`
	Text  string `json:"texto"`
}

// ToNote converts the item to a note.
func (i Item) ToNote() notetool.Note {
	return notetool.Note{
		ID:    i.ID,
		Title: i.Title,
		Body:  i.Text,
	}
}

// FromNote converts a note to its wire representation.
func FromNote(n notetool.Note) Item {
	return Item{
		ID:    n.ID,
		Title: n.Title,
		Text:  n.Body,
	}
}
