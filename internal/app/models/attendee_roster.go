package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RosterKind discriminates the historical shapes attendee data arrives in.
type RosterKind int

const (
	// RosterNone means no attendee data was recorded.
	RosterNone RosterKind = iota
	// RosterSingle is a single display string.
	RosterSingle
	// RosterList is a sequence of display strings.
	RosterList
	// RosterMapping is name -> role pairs.
	RosterMapping
)

// AttendeePair is one entry of a mapping-shaped roster.
type AttendeePair struct {
	Name string
	Role string
}

// AttendeeRoster is a tagged variant over the shapes attendee data has taken
// across dataset generations: a mapping of name to role, a plain list, a
// single string, or nothing at all. Keeping the shape explicit lets the view
// builder match exhaustively instead of type-sniffing at render time.
//
// The mapping variant keeps an ordered pair list so rendering stays
// deterministic.
type AttendeeRoster struct {
	kind   RosterKind
	single string
	list   []string
	pairs  []AttendeePair
}

// RosterFromSingle wraps a single attendee display string.
func RosterFromSingle(entry string) AttendeeRoster {
	return AttendeeRoster{kind: RosterSingle, single: entry}
}

// RosterFromList wraps a sequence of attendee display strings.
func RosterFromList(entries ...string) AttendeeRoster {
	return AttendeeRoster{kind: RosterList, list: append([]string(nil), entries...)}
}

// RosterFromPairs wraps ordered name/role pairs.
func RosterFromPairs(pairs ...AttendeePair) AttendeeRoster {
	return AttendeeRoster{kind: RosterMapping, pairs: append([]AttendeePair(nil), pairs...)}
}

// Kind returns the roster's shape.
func (r AttendeeRoster) Kind() RosterKind {
	return r.kind
}

// Lines renders the roster as display strings: mapping entries as
// "name: role", lists as-is, a single string as a one-element list and an
// absent roster as an empty list.
func (r AttendeeRoster) Lines() []string {
	switch r.kind {
	case RosterMapping:
		lines := make([]string, 0, len(r.pairs))
		for _, pair := range r.pairs {
			lines = append(lines, pair.Name+": "+pair.Role)
		}
		return lines
	case RosterList:
		return append([]string(nil), r.list...)
	case RosterSingle:
		return []string{r.single}
	default:
		return []string{}
	}
}

func (r AttendeeRoster) clone() AttendeeRoster {
	clone := r
	clone.list = append([]string(nil), r.list...)
	clone.pairs = append([]AttendeePair(nil), r.pairs...)
	return clone
}

// MarshalJSON preserves the original wire shape of each variant.
func (r AttendeeRoster) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RosterMapping:
		// Built by hand to keep pair order; encoding/json would sort a map.
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, pair := range r.pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(pair.Name)
			if err != nil {
				return nil, err
			}
			role, err := json.Marshal(pair.Role)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(role)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case RosterList:
		return json.Marshal(r.list)
	case RosterSingle:
		return json.Marshal(r.single)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts all four historical payload shapes.
func (r *AttendeeRoster) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = AttendeeRoster{}
		return nil
	}

	switch trimmed[0] {
	case '{':
		pairs, err := decodeOrderedPairs(trimmed)
		if err != nil {
			return err
		}
		*r = AttendeeRoster{kind: RosterMapping, pairs: pairs}
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*r = AttendeeRoster{kind: RosterList, list: list}
		return nil
	case '"':
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = AttendeeRoster{kind: RosterSingle, single: single}
		return nil
	default:
		return fmt.Errorf("attendee roster: unsupported payload %q", string(trimmed))
	}
}

// decodeOrderedPairs walks the object token stream so key order survives,
// which a plain map[string]string decode would lose.
func decodeOrderedPairs(data []byte) ([]AttendeePair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil { // opening brace
		return nil, err
	}

	var pairs []AttendeePair
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("attendee roster: non-string key %v", keyToken)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("attendee roster: value for %q: %w", key, err)
		}
		pairs = append(pairs, AttendeePair{Name: key, Role: value})
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return pairs, nil
}
