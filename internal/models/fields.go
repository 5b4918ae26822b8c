package models

import (
	"bytes"
	"encoding/json"
)

// ID accepts both numeric and string identifiers and keeps the textual form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Booleans, objects and arrays are not identifiers.
		*id = ""
		return nil
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always writes a string, so leading zeros and signs survive
// a round trip.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Named is a field the backend sends either as a plain string or as an
// object carrying a name (category, author).
type Named struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	// Plain is set when the value arrived as a bare string.
	Plain bool `json:"-"`
}

func (n *Named) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = Named{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Named{Name: s, Plain: true}
		return nil
	case len(data) > 0 && data[0] == '{':
		type plain Named
		var obj plain
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*n = Named(obj)
		return nil
	}
	// Anything else (numbers, arrays) carries no usable name.
	*n = Named{}
	return nil
}

func (n Named) MarshalJSON() ([]byte, error) {
	if n.Plain {
		return json.Marshal(n.Name)
	}
	type plain Named
	return json.Marshal(plain(n))
}

// Rendered is a WordPress field that is either a string or {"rendered": "..."}.
type Rendered string

func (r *Rendered) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Rendered string `json:"rendered"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = Rendered(obj.Rendered)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = ""
		return nil
	}
	*r = Rendered(s)
	return nil
}
