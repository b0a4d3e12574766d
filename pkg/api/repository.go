package api

import (
	"github.com/akeil/notetool"
)

type repo struct {
	client *Client
}

// NewRepository creates a Repository backed by the given API client.
func NewRepository(c *Client) notetool.Repository {
	return &repo{
		client: c,
	}
}

func (r *repo) List() ([]notetool.Note, error) {
	items, err := r.client.List()
	if err != nil {
		return nil, err
	}

	rv := make([]notetool.Note, len(items))
	for i, item := range items {
		rv[i] = item.ToNote()
	}

	return rv, nil
}

func (r *repo) Create(n notetool.Note) (notetool.Note, error) {
	item, err := r.client.Create(n.Title, n.Body)
	if err != nil {
		return notetool.Note{}, err
	}

	return item.ToNote(), nil
}

func (r *repo) Update(n notetool.Note) (notetool.Note, error) {
	item, err := r.client.Update(n.ID, n.Title, n.Body)
	if err != nil {
		return notetool.Note{}, err
	}

	// the service may answer without a body
	if item.ID == 0 {
		return n, nil
	}
	return item.ToNote(), nil
}

func (r *repo) Delete(id int64) error {
	return r.client.Delete(id)
}
