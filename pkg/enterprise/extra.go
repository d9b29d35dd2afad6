package enterprise

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Extra holds response fields that have no modeled counterpart on an entity.
// The Enterprise API grows fields across versions; unknown keys are captured
// here on unmarshal and written back on marshal so round-tripping an entity
// never loses data. Modeled fields always win over Extra on marshal.
type Extra map[string]json.RawMessage

// Get returns the raw JSON for an unmodeled field.
func (e Extra) Get(key string) (json.RawMessage, bool) {
	raw, ok := e[key]

	return raw, ok
}

// Decode unmarshals an unmodeled field into out.
func (e Extra) Decode(key string, out interface{}) error {
	raw, ok := e[key]
	if !ok {
		return fmt.Errorf("extra field %q: %w", key, ErrExtraFieldNotFound)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding extra field %q: %w", key, err)
	}

	return nil
}

// UnmarshalExtra unmarshals data into v and captures every object key that
// does not correspond to a modeled field of v into extra. v must be a pointer
// to a struct type without custom unmarshaling (the usual alias pattern).
func UnmarshalExtra(data []byte, v interface{}, extra *Extra) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	for name := range jsonFieldNames(reflect.Indirect(reflect.ValueOf(v)).Type()) {
		delete(raw, name)
	}

	if len(raw) > 0 {
		*extra = Extra(raw)
	}

	return nil
}

// MarshalExtra marshals v and merges in the extra fields. Keys present on v
// are never overwritten by extra.
func MarshalExtra(v interface{}, extra Extra) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}

	if merged == nil {
		merged = make(map[string]json.RawMessage, len(extra))
	}

	for key, value := range extra {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}

	return json.Marshal(merged)
}

// jsonFieldNames collects the effective JSON keys of a struct type, following
// embedded structs the way encoding/json does.
func jsonFieldNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool)
	collectFieldNames(t, names)

	return names
}

func collectFieldNames(t reflect.Type, names map[string]bool) {
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name := strings.Split(tag, ",")[0]

		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}

			collectFieldNames(embedded, names)

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		names[name] = true
	}
}
