// Package users implements the user store: a single JSON document mapping
// email to user record, kept under one key of a kv.Store.
package users

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a registered user. The password is stored as typed.
type Record struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RegistrationTime int64  `json:"registrationTime"`
}

// userMap is the decoded store document. JSON object key order is kept as
// insertion order so that listing ties resolve the same way on every load.
type userMap struct {
	order   []string
	records map[string]Record
}

func newUserMap() *userMap {
	return &userMap{records: make(map[string]Record)}
}

func (m *userMap) get(email string) (Record, bool) {
	r, ok := m.records[email]
	return r, ok
}

// insert adds a new record; callers check presence first.
func (m *userMap) insert(r Record) {
	if _, ok := m.records[r.Email]; !ok {
		m.order = append(m.order, r.Email)
	}
	m.records[r.Email] = r
}

// values returns records in insertion order.
func (m *userMap) values() []Record {
	out := make([]Record, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.records[k])
	}
	return out
}

func (m *userMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.records[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *userMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("users document: expected object, got %v", tok)
	}

	m.order = nil
	m.records = make(map[string]Record)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("users document: unexpected key %v", tok)
		}
		var r Record
		if err := dec.Decode(&r); err != nil {
			return fmt.Errorf("users document: record %q: %w", key, err)
		}
		// a repeated key keeps its first position and the last value
		if _, seen := m.records[key]; !seen {
			m.order = append(m.order, key)
		}
		m.records[key] = r
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
