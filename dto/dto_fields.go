package dto

import "encoding/json"

// StringOrList accepts either a JSON string or an array of strings.
// A scalar becomes a single-element list; normalization to the canonical
// trimmed form happens at the write boundary, not here.
type StringOrList []string

func (s *StringOrList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = StringOrList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = StringOrList(many)
	return nil
}

// StringOrNumber accepts a JSON number or a numeric string and keeps the
// raw text. Parsing to int happens at the write boundary.
type StringOrNumber string

func (v *StringOrNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StringOrNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = StringOrNumber(n.String())
	return nil
}

func (v StringOrNumber) String() string { return string(v) }
