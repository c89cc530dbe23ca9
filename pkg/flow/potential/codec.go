package potential

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type wire[T any] struct {
	Value    *T   `json:"value" yaml:"value"`
	HasValue bool `json:"hasValue" yaml:"hasValue"`
}

func (p Potential[T]) toWire() wire[T] {
	w := wire[T]{HasValue: p.hasValue}
	if p.hasValue {
		v := p.value
		w.Value = &v
	}
	return w
}

// fromWire trusts the flag; the value was validated when it was wrapped.
func fromWire[T any](w wire[T]) Potential[T] {
	if !w.HasValue {
		return WithoutValue[T]()
	}
	var v T
	if w.Value != nil {
		v = *w.Value
	}
	return Potential[T]{value: v, hasValue: true}
}

func (p Potential[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toWire())
}

func (p *Potential[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = fromWire(w)
	return nil
}

func (p Potential[T]) MarshalYAML() (any, error) {
	return p.toWire(), nil
}

func (p *Potential[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire[T]
	if err := node.Decode(&w); err != nil {
		return err
	}
	*p = fromWire(w)
	return nil
}
