// Package activityapi defines the wire contract of the activities API and a
// client for consuming it.
package activityapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is the detail object of one activity in the GET /activities
// payload.
type Activity struct {
	Description     string        `json:"description"`
	Schedule        string        `json:"schedule"`
	MaxParticipants int           `json:"max_participants"`
	Participants    []Participant `json:"participants"`
}

// SpotsLeft returns max_participants minus the current roster size.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Participant is one roster entry. The backend may send either a bare email
// string or a structured record with a display name; both decode into this
// type.
type Participant struct {
	Email string
	Name  string
}

// Display returns the name for structured records, else the string form.
func (p Participant) Display() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

func (p Participant) MarshalJSON() ([]byte, error) {
	if p.Name == "" {
		return json.Marshal(p.Email)
	}
	return json.Marshal(struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: p.Name, Email: p.Email})
}

func (p *Participant) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		p.Name = ""
		return json.Unmarshal(trimmed, &p.Email)
	}
	var record struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return fmt.Errorf("participant: %w", err)
	}
	p.Name = record.Name
	p.Email = record.Email
	return nil
}

// Entry pairs an activity name with its detail.
type Entry struct {
	Name     string
	Activity Activity
}

// Collection is the full GET /activities payload: a JSON object mapping
// activity name to detail. Key order is significant and preserved — entries
// marshal in slice order and unmarshal in document order.
type Collection []Entry

// Names returns the activity names in collection order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		names = append(names, e.Name)
	}
	return names
}

// Get returns the activity stored under name.
func (c Collection) Get(name string) (Activity, bool) {
	for _, e := range c {
		if e.Name == name {
			return e.Activity, true
		}
	}
	return Activity{}, false
}

func (c Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("activities payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities payload: expected object, got %v", tok)
	}
	out := Collection{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("activities payload: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("activities payload: expected string key, got %v", keyTok)
		}
		var activity Activity
		if err := dec.Decode(&activity); err != nil {
			return fmt.Errorf("activities payload: decode %q: %w", name, err)
		}
		out = append(out, Entry{Name: name, Activity: activity})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("activities payload: %w", err)
	}
	*c = out
	return nil
}
