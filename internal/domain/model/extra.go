package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// Extra holds the members of a manifest object that the model has no field
// for, such as "configMfe" or "params" on a widget. They are written back
// unchanged after the known fields.
type Extra map[string]json.RawMessage

// splitExtra returns the members of the object data that are not named by a
// json tag of wire, which must be a struct. It returns nil when there are none.
func splitExtra(data []byte, wire any) (Extra, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for _, name := range jsonFieldNames(reflect.TypeOf(wire)) {
		delete(members, name)
	}
	if len(members) == 0 {
		return nil, nil
	}
	return Extra(members), nil
}

// withExtra appends the extra members, sorted by name, to the encoded object.
func withExtra(encoded []byte, extra Extra) ([]byte, error) {
	if len(extra) == 0 {
		return encoded, nil
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)

	body := bytes.TrimSuffix(bytes.TrimSpace(encoded), []byte("}"))
	empty := len(bytes.TrimSpace(body)) == 1

	var buf bytes.Buffer
	buf.Write(body)
	for i, name := range names {
		if i > 0 || !empty {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(extra[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
		case "":
			names = append(names, field.Name)
		default:
			names = append(names, name)
		}
	}
	return names
}
