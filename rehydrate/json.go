package rehydrate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Decode reads one JSON object with numbers kept as json.Number, so that
// integers survive a rehydrate round trip unchanged.
func Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var q map[string]any
	if err := dec.Decode(&q); err != nil {
		return nil, fmt.Errorf("rehydrate: decode query: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("rehydrate: unexpected data after query")
	}
	return q, nil
}

// JSON rehydrates an encoded query and re-encodes the result.
func (r *Rehydrator) JSON(data []byte) ([]byte, error) {
	q, err := Decode(data)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(r.Query(q))
	if err != nil {
		return nil, fmt.Errorf("rehydrate: encode query: %w", err)
	}
	return out, nil
}
