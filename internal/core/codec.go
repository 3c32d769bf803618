package core

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type wireRecord struct {
	CurrentState      *string `json:"currentState,omitempty"`
	PendingTransition *string `json:"pendingTransition,omitempty"`
}

// EncodeClassifications renders the persisted layout: a JSON object keyed by
// tab id.
func EncodeClassifications(c Classifications) ([]byte, error) {
	wire := make(map[string]wireRecord, len(c))
	for id, rec := range c {
		state := string(rec.State)
		if rec.State == "" {
			state = string(StateNormal)
		}
		w := wireRecord{CurrentState: &state}
		if rec.IsPending() {
			p := string(rec.Pending)
			w.PendingTransition = &p
		}
		wire[id] = w
	}
	return json.Marshal(wire)
}

// DecodeClassifications parses the persisted layout. A missing currentState
// decodes as normal; unknown enum spellings are an error. Empty input and
// JSON null yield an empty map.
func DecodeClassifications(data []byte) (Classifications, error) {
	out := Classifications{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return out, nil
	}

	var wire map[string]*wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, "decode classifications")
	}

	for id, w := range wire {
		rec := Record{State: StateNormal}
		if w == nil {
			out[id] = rec
			continue
		}
		if w.CurrentState != nil {
			rec.State = State(*w.CurrentState)
			if !rec.State.Valid() {
				return nil, errors.Errorf("decode classifications: tab %q: unknown state %q", id, *w.CurrentState)
			}
		}
		if w.PendingTransition != nil {
			rec.Pending = Pending(*w.PendingTransition)
			if !rec.Pending.Valid() {
				return nil, errors.Errorf("decode classifications: tab %q: unknown pending transition %q", id, *w.PendingTransition)
			}
		}
		out[id] = rec
	}
	return out, nil
}
