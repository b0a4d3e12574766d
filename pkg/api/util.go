package api

import (
	"net/url"
	"strings"
)

// resolve builds the URL for an endpoint below the collection URL.
// An empty endpoint refers to the collection itself.
func resolve(base, endpoint string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	if endpoint == "" {
		return b.String(), nil
	}

	// without the trailing slash, the last path segment would be replaced
	if !strings.HasSuffix(b.Path, "/") {
		b.Path = b.Path + "/"
	}

	e, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	return b.ResolveReference(e).String(), nil
}
