package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akeil/notetool/internal/errors"
	"github.com/akeil/notetool/internal/logging"
)

// DefaultURL is the note collection used if nothing else is configured.
const DefaultURL = "https://dev-web-09-crud.onrender.com/api/notes"

// HeaderRequestID carries a random ID with every request
// so that client and server log lines can be matched.
const HeaderRequestID = "X-Request-ID"

const userAgent = "notetool"

// Client represents the ReST API for a note collection.
//
// All operations work on the collection URL given to NewClient;
// single notes are addressed as <collection>/<id>.
type Client struct {
	base   string
	client *http.Client
}

// NewClient sets up an API client for the collection at the given URL.
//
// A timeout of zero means requests never time out.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: base,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// List retrieves the full list of notes from the service.
//
// The service must send a list; an empty body or null is a failure.
func (c *Client) List() ([]Item, error) {
	var items []Item
	err := c.request("GET", "", nil, &items)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errors.NewRequestFailure(nil, "failed to read API response: no list of notes")
	}

	logging.Debug("List request returned %d items", len(items))

	return items, nil
}

// Create adds a new note to the collection.
//
// Returns the created item if the service sends it back.
func (c *Client) Create(title, text string) (Item, error) {
	var item Item
	payload := newItem{Title: title, Text: text}
	err := c.request("POST", "", payload, &item)
	return item, err
}

// Update replaces title and text for the note with the given ID.
//
// Returns the updated item if the service sends it back.
func (c *Client) Update(id int64, title, text string) (Item, error) {
	var item Item
	payload := newItem{Title: title, Text: text}
	err := c.request("PUT", itemPath(id), payload, &item)
	return item, err
}

// Delete removes the note with the given ID.
func (c *Client) Delete(id int64) error {
	return c.request("DELETE", itemPath(id), nil, nil)
}

// CloseIdleConnections closes connections kept open from earlier requests.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

func itemPath(id int64) string {
	return strconv.FormatInt(id, 10)
}

// request sends a request to the given endpoint relative to the collection
// URL and decodes the response into dst.
//
// Any problem with the request, including an unsuccessful HTTP status,
// is reported as a request failure.
// An empty response body is accepted and leaves dst unchanged.
func (c *Client) request(method, endpoint string, payload, dst interface{}) error {
	req, err := newRequest(method, c.base, endpoint, payload)
	if err != nil {
		return errors.NewRequestFailure(err, "could not prepare API request")
	}

	reqID := req.Header.Get(HeaderRequestID)
	logging.Debug("API %v %v [%v]", req.Method, req.URL, reqID)

	// log the request body
	if req.Body != nil {
		data, err := ioutil.ReadAll(req.Body)
		if err == nil {
			logging.Debug("Request body: %v", strings.TrimSpace(string(data)))
			req.Body = ioutil.NopCloser(bytes.NewBuffer(data))
		}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return errors.NewRequestFailure(err, "%v request failed", method)
	}
	defer res.Body.Close()
	// must read body to end
	// https://golang.org/pkg/net/http/#Client.Do
	resData, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.NewRequestFailure(err, "could not read API response")
	}

	logging.Debug("API request %v %v returned status %v [%v]", req.Method, req.URL, res.StatusCode, reqID)
	logging.Debug("Response body: %v", string(resData))

	err = errors.ExpectSuccess(res, fmt.Sprintf("%v request failed", method))
	if err != nil {
		return err
	}

	if dst != nil && len(bytes.TrimSpace(resData)) != 0 {
		dec := json.NewDecoder(bytes.NewBuffer(resData))
		err = dec.Decode(dst)
		if err != nil {
			return errors.NewRequestFailure(err, "failed to read API response")
		}
	}

	return nil
}

func newRequest(method, base, endpoint string, payload interface{}) (*http.Request, error) {
	url, err := resolve(base, endpoint)
	if err != nil {
		return nil, err
	}

	// If we have payload, encode it to JSON
	var body io.ReadWriter
	if payload != nil {
		body = &bytes.Buffer{}
		enc := json.NewEncoder(body)
		err = enc.Encode(payload)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(HeaderRequestID, uuid.New().String())

	return req, nil
}
