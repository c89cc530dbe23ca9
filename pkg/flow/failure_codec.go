package flow

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// failureWire is the serialized shape of a Failure. The exception has no
// field here on purpose: it only exists inside the process that created it.
type failureWire struct {
	Type       Kind              `json:"$type" yaml:"$type"`
	Reason     string            `json:"reason" yaml:"reason"`
	Details    map[string]string `json:"details" yaml:"details"`
	SubTypeID  int               `json:"subTypeID" yaml:"subTypeID"`
	CanRetry   bool              `json:"canRetry" yaml:"canRetry"`
	OccurredAt time.Time         `json:"occurredAt" yaml:"occurredAt"`
}

func (f *Failure) toWire() failureWire {
	details := f.details
	if details == nil {
		details = map[string]string{}
	}
	return failureWire{
		Type:       f.kind,
		Reason:     f.reason,
		Details:    details,
		SubTypeID:  f.subTypeID,
		CanRetry:   f.canRetry,
		OccurredAt: f.occurredAt,
	}
}

func (w failureWire) toFailure() (*Failure, error) {
	if err := w.Type.Validate(); err != nil {
		return nil, err
	}
	return NewFailure(w.Type, w.Reason,
		WithDetails(w.Details),
		WithSubTypeID(w.SubTypeID),
		WithCanRetry(w.CanRetry),
		WithOccurredAt(w.OccurredAt),
	), nil
}

func (f *Failure) MarshalJSON() ([]byte, error) {
	if err := f.kind.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal failure: %w", err)
	}
	return json.Marshal(f.toWire())
}

func (f *Failure) UnmarshalJSON(data []byte) error {
	var w failureWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into failure: %w", err)
	}
	decoded, err := w.toFailure()
	if err != nil {
		return fmt.Errorf("cannot unmarshal JSON into failure: %w", err)
	}
	*f = *decoded
	return nil
}

func (f *Failure) MarshalYAML() (interface{}, error) {
	if err := f.kind.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal failure: %w", err)
	}
	return f.toWire(), nil
}

func (f *Failure) UnmarshalYAML(node *yaml.Node) error {
	var w failureWire
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into failure: %w", err)
	}
	decoded, err := w.toFailure()
	if err != nil {
		return fmt.Errorf("cannot unmarshal YAML into failure: %w", err)
	}
	*f = *decoded
	return nil
}
