package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoCaseID = errors.New("remote case object has no id")

// Case is one mirrored record. ID is assigned by the remote service and is
// immutable; Attributes is the remote representation stored verbatim — the
// local schema adds nothing the remote does not carry.
type Case struct {
	ID         string          `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
}

// CaseFromRemote builds a Case from a raw remote object by extracting its
// "id" member. Numeric ids are kept in their literal form so that the value
// round-trips without float conversion.
func CaseFromRemote(raw json.RawMessage) (Case, error) {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Case{}, fmt.Errorf("decode remote case object: %w", err)
	}
	if len(probe.ID) == 0 || bytes.Equal(probe.ID, []byte("null")) {
		return Case{}, ErrNoCaseID
	}

	id := string(bytes.Trim(probe.ID, `"`))
	if id == "" {
		return Case{}, ErrNoCaseID
	}

	return Case{ID: id, Attributes: raw}, nil
}

// ContentEquals reports whether two cases carry the same attribute bag.
// Comparison is made on canonicalized JSON so key order and whitespace
// produced by different serializers never register as a change.
func (c Case) ContentEquals(other Case) bool {
	a, errA := canonicalJSON(c.Attributes)
	b, errB := canonicalJSON(other.Attributes)
	if errA != nil || errB != nil {
		// Undecodable payloads fall back to byte comparison.
		return bytes.Equal(c.Attributes, other.Attributes)
	}
	return bytes.Equal(a, b)
}

func canonicalJSON(raw json.RawMessage) ([]byte, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
