package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseList normalizes a whitelist/blacklist input. Accepted encodings, in
// order: JSON array, bracketed quoted list, newline separated, space
// separated, comma separated. It never fails; unparseable bracketed input
// falls through to the delimiter-based encodings.
func ParseList(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{}
	}

	if strings.HasPrefix(input, "[") && strings.HasSuffix(input, "]") {
		if items, ok := parseJSONList(input); ok {
			return items
		}
		if items, err := parseLiteralList(input); err == nil {
			return compact(items)
		}
	}

	if strings.Contains(input, "\n") {
		return compact(strings.Split(input, "\n"))
	}

	if strings.Contains(input, " ") && !strings.Contains(input, ",") {
		return compact(strings.Split(input, " "))
	}

	return compact(strings.Split(input, ","))
}

func parseJSONList(input string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	items := make([]string, 0, len(raw))
	for _, v := range raw {
		items = append(items, stringify(v))
	}
	return compact(items), true
}

// null and booleans render as "None", "True" and "False".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(t)
	}
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
