package flow

import "fmt"

// InvalidEntry records a single validation complaint.
type InvalidEntry struct {
	FailureMessage string `json:"failureMessage" yaml:"failureMessage"`
	Path           string `json:"path" yaml:"path"`
	PropertyName   string `json:"propertyName" yaml:"propertyName"`
	DisplayName    string `json:"displayName" yaml:"displayName"`
	Cause          string `json:"cause" yaml:"cause"`
}

// NewInvalidEntry builds an entry; the optional fields are path, property
// name, display name and cause, in that order.
func NewInvalidEntry(message string, fields ...string) InvalidEntry {
	e := InvalidEntry{FailureMessage: message}
	targets := []*string{&e.Path, &e.PropertyName, &e.DisplayName, &e.Cause}
	for i, v := range fields {
		if i >= len(targets) {
			break
		}
		*targets[i] = v
	}
	return e
}

func (e InvalidEntry) Error() string {
	if e.PropertyName == "" {
		return e.FailureMessage
	}
	return fmt.Sprintf("%s: %s", e.PropertyName, e.FailureMessage)
}
