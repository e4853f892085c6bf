package registry

import (
	"encoding/json"
	"fmt"
)

// rawSubmission mirrors the wire shape of an upload body before any
// per-field checks have run.
type rawSubmission struct {
	Plugins map[string]json.RawMessage `json:"plugins"`
}

type rawDescriptor struct {
	Depend     []json.RawMessage `json:"depend"`
	Softdepend []json.RawMessage `json:"softdepend"`
}

// ValidateSubmission checks an inbound upload body and returns the typed
// plugin map on success. It has no side effects and must run before any
// persistence attempt. All failures are *ValidationError.
func ValidateSubmission(raw []byte) (PluginMap, error) {
	var sub rawSubmission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, &ValidationError{Reason: "body must be a JSON object with a plugins mapping"}
	}

	if sub.Plugins == nil {
		return nil, &ValidationError{Reason: "plugins mapping is required"}
	}

	if len(sub.Plugins) == 0 {
		return nil, &ValidationError{Reason: "plugins mapping must not be empty"}
	}

	plugins := make(PluginMap, len(sub.Plugins))

	for name, rawDesc := range sub.Plugins {
		if name == "" {
			return nil, &ValidationError{Reason: "plugin name must not be empty"}
		}

		deps, err := validateDescriptor(name, rawDesc)
		if err != nil {
			return nil, err
		}

		plugins[name] = deps
	}

	return plugins, nil
}

func validateDescriptor(name string, raw json.RawMessage) (Dependencies, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Dependencies{}, &ValidationError{
			Reason: fmt.Sprintf("plugin %q must map to an object", name),
		}
	}

	var desc rawDescriptor
	if err := json.Unmarshal(raw, &desc); err != nil {
		return Dependencies{}, &ValidationError{
			Reason: fmt.Sprintf("plugin %q: depend and softdepend must be arrays", name),
		}
	}

	depend, err := validateList(name, "depend", desc.Depend)
	if err != nil {
		return Dependencies{}, err
	}

	softdepend, err := validateList(name, "softdepend", desc.Softdepend)
	if err != nil {
		return Dependencies{}, err
	}

	return Dependencies{Depend: depend, Softdepend: softdepend}, nil
}

func validateList(name, field string, entries []json.RawMessage) ([]string, error) {
	if entries == nil {
		return nil, nil
	}

	out := make([]string, 0, len(entries))

	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err != nil {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("plugin %q: %s entries must be strings", name, field),
			}
		}

		out = append(out, s)
	}

	return out, nil
}
