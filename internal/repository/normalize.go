package repository

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NormalizeList converts a field that may have been stored as a scalar
// string or as a list into a canonical ordered list: elements trimmed,
// empties dropped, order preserved. A scalar becomes a one-element list;
// comma-splitting is the submit boundary's job, not the read boundary's.
func NormalizeList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case string:
		return cleanList([]string{t})
	case []string:
		return cleanList(t)
	case bson.A:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return cleanList(out)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return cleanList(out)
	default:
		return []string{}
	}
}

// SplitList turns a comma-joined form value into a canonical list.
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asInt(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

func docID(v any) string {
	switch t := v.(type) {
	case bson.ObjectID:
		return t.Hex()
	case string:
		return t
	}
	return ""
}
