package taskid

import (
	"fmt"
	"strings"

	"go.trai.ch/taskid/internal/core/domain"
)

// Parse splits a task id into its task name and raw parameters.
// Values are never interpreted; list values come back as raw string lists.
// Structural problems are reported as *domain.TaskIDParseError.
func Parse(id string) (string, domain.RawParams, error) {
	open := strings.IndexByte(id, '(')
	if open < 0 {
		return "", nil, domain.NewTaskIDParseError(id, "missing '('")
	}
	if !strings.HasSuffix(id, ")") {
		return "", nil, domain.NewTaskIDParseError(id, "missing closing ')'")
	}

	name := id[:open]
	if name == "" {
		return "", nil, domain.NewTaskIDParseError(id, "empty task name")
	}

	segments, reason := splitTopLevel(id[open+1 : len(id)-1])
	if reason != "" {
		return "", nil, domain.NewTaskIDParseError(id, reason)
	}

	params := make(domain.RawParams, len(segments))
	for _, seg := range segments {
		key, value, ok := strings.Cut(seg, "=")
		if !ok {
			return "", nil, domain.NewTaskIDParseError(id, fmt.Sprintf("missing '=' in %q", seg))
		}
		if key == "" {
			return "", nil, domain.NewTaskIDParseError(id, fmt.Sprintf("empty parameter name in %q", seg))
		}
		if _, dup := params[key]; dup {
			return "", nil, domain.NewTaskIDParseError(id, fmt.Sprintf("duplicate parameter %q", key))
		}
		params[key] = parseValue(value)
	}

	return name, params, nil
}

// ParseValue parses a single value literal as it appears after '=' in a task id.
func ParseValue(raw string) (domain.RawValue, error) {
	if _, reason := splitTopLevel(raw); reason != "" {
		return domain.RawValue{}, domain.NewTaskIDParseError(raw, reason)
	}
	return parseValue(raw), nil
}

// parseValue assumes raw has balanced delimiters.
func parseValue(raw string) domain.RawValue {
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return domain.RawScalar(raw)
	}

	interior := raw[1 : len(raw)-1]
	if strings.TrimSpace(interior) == "" {
		return domain.RawList()
	}

	elems, _ := splitTopLevel(interior)
	for i, e := range elems {
		elems[i] = strings.TrimSpace(e)
	}
	return domain.RawList(elems...)
}

// splitTopLevel splits s at commas outside of [...] and checks that brackets and
// parentheses balance. It returns a non-empty reason on imbalance.
func splitTopLevel(s string) ([]string, string) {
	if s == "" {
		return nil, ""
	}

	var (
		parts    []string
		brackets int
		parens   int
		start    int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			brackets++
		case ']':
			brackets--
			if brackets < 0 {
				return nil, fmt.Sprintf("unbalanced ']' at offset %d", i)
			}
		case '(':
			parens++
		case ')':
			parens--
			if parens < 0 {
				return nil, fmt.Sprintf("unbalanced ')' at offset %d", i)
			}
		case ',':
			if brackets == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if brackets != 0 {
		return nil, "unbalanced '['"
	}
	if parens != 0 {
		return nil, "unbalanced '('"
	}
	return append(parts, s[start:]), ""
}
