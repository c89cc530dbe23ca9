package flow

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var errMissingFailure = errors.New("failed result without failureValue")

type resultWire[T any] struct {
	FailureValue *Failure `json:"failureValue,omitempty" yaml:"failureValue,omitempty"`
	SuccessValue *T       `json:"successValue,omitempty" yaml:"successValue,omitempty"`
	IsSuccess    bool     `json:"isSuccess" yaml:"isSuccess"`
}

func (r Result[T]) toWire() resultWire[T] {
	if r.isSuccess {
		v := r.success
		return resultWire[T]{SuccessValue: &v, IsSuccess: true}
	}
	return resultWire[T]{FailureValue: r.failureValue()}
}

func (w resultWire[T]) toResult() (Result[T], error) {
	var success T
	if w.SuccessValue != nil {
		success = *w.SuccessValue
	}
	if !w.IsSuccess && w.FailureValue == nil {
		return Result[T]{}, errMissingFailure
	}
	return restore(success, w.FailureValue, w.IsSuccess), nil
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var w resultWire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into result: %w", err)
	}
	decoded, err := w.toResult()
	if err != nil {
		return fmt.Errorf("cannot unmarshal JSON into result: %w", err)
	}
	*r = decoded
	return nil
}

func (r Result[T]) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

func (r *Result[T]) UnmarshalYAML(node *yaml.Node) error {
	var w resultWire[T]
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into result: %w", err)
	}
	decoded, err := w.toResult()
	if err != nil {
		return fmt.Errorf("cannot unmarshal YAML into result: %w", err)
	}
	*r = decoded
	return nil
}
