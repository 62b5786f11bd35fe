package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
)

// The fixture ships inside the binary; there is deliberately no way to
// point the service at another file.
//
//go:embed data.json
var fixture []byte

var errEmptyFixture = errors.New("embedded fixture is empty")

// Load parses the bundled fixture. It runs once, from main, before the
// listener starts; a non-nil error means the process must not serve.
func Load() (*Document, error) {
	return ParseDocument(fixture)
}

// ParseDocument turns raw fixture bytes into a Document. Empty input and
// anything that fails structural decoding surface as a *LoadError.
func ParseDocument(raw []byte) (*Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &LoadError{Err: errEmptyFixture}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Err: err}
	}
	return &doc, nil
}
