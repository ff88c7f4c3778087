package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ParameterKind is the closed set of value types a task parameter can hold.
type ParameterKind int

const (
	// KindInvalid is the zero ParameterKind and never valid for a parameter.
	KindInvalid ParameterKind = iota
	// KindText holds a raw string.
	KindText
	// KindBoolean holds a bool.
	KindBoolean
	// KindInteger holds an int64.
	KindInteger
	// KindFloat holds a float64.
	KindFloat
	// KindDate holds a calendar date.
	KindDate
	// KindDateHour holds a calendar date and hour of day.
	KindDateHour
	// KindTimeInterval holds a duration with whole-day precision on the wire.
	KindTimeInterval
)

var kindNames = map[ParameterKind]string{
	KindText:         "text",
	KindBoolean:      "boolean",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindDate:         "date",
	KindDateHour:     "datehour",
	KindTimeInterval: "timeinterval",
}

var kindAliases = map[string]ParameterKind{
	"string":    KindText,
	"str":       KindText,
	"bool":      KindBoolean,
	"int":       KindInteger,
	"timedelta": KindTimeInterval,
	"interval":  KindTimeInterval,
}

// String returns the canonical lowercase name of the kind.
func (k ParameterKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Valid reports whether k is one of the declared kinds.
func (k ParameterKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind from its canonical name or an alias, ignoring case.
func ParseKind(name string) (ParameterKind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, canonical := range kindNames {
		if canonical == lower {
			return k, nil
		}
	}
	if k, ok := kindAliases[lower]; ok {
		return k, nil
	}
	return KindInvalid, zerr.With(ErrUnknownKind, "kind", name)
}
