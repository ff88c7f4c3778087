package domain

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DateLayout is the wire format of KindDate values. Only years 0000 through
	// 9999 round-trip; Parse rejects the wider years Render would produce outside it.
	DateLayout = "2006-01-02"
	// DateHourLayout is the wire format of KindDateHour values, with the same year range.
	DateHourLayout = "2006-01-02T15"

	day = 24 * time.Hour
)

// Parse converts a raw wire string into a scalar value of kind k.
// It fails with a *ValueParseError and never returns a partial value.
func (k ParameterKind) Parse(raw string) (Value, error) {
	switch k {
	case KindText:
		return TextValue(raw), nil

	case KindBoolean:
		switch {
		case strings.EqualFold(raw, "true"):
			return BoolValue(true), nil
		case strings.EqualFold(raw, "false"):
			return BoolValue(false), nil
		}
		return Value{}, newValueParseError(k, raw, nil)

	case KindInteger:
		if strings.HasPrefix(raw, "+") {
			return Value{}, newValueParseError(k, raw, nil)
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, newValueParseError(k, raw, err)
		}
		return IntValue(i), nil

	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, newValueParseError(k, raw, err)
		}
		return FloatValue(f), nil

	case KindDate:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return Value{}, newValueParseError(k, raw, err)
		}
		return DateValue(t), nil

	case KindDateHour:
		// The "15" layout element also accepts a single-digit hour.
		if len(raw) != len(DateHourLayout) {
			return Value{}, newValueParseError(k, raw, nil)
		}
		t, err := time.Parse(DateHourLayout, raw)
		if err != nil {
			return Value{}, newValueParseError(k, raw, err)
		}
		return DateHourValue(t), nil

	case KindTimeInterval:
		days, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, newValueParseError(k, raw, err)
		}
		if days > int64(time.Duration(1<<63-1)/day) || days < int64(time.Duration(-1<<63)/day) {
			return Value{}, newValueParseError(k, raw, strconv.ErrRange)
		}
		return IntervalValue(time.Duration(days) * day), nil

	case KindInvalid:
	}
	return Value{}, newValueParseError(k, raw, zerr.With(ErrUnknownKind, "kind", int(k)))
}

// Render converts a scalar value of kind k into its canonical wire string.
// For every value Render produces, Parse returns an equal value, except that
// KindTimeInterval only carries whole days: any sub-day remainder is dropped.
func (k ParameterKind) Render(v Value) (string, error) {
	if v.kind != k || v.list {
		return "", zerr.With(zerr.With(ErrKindMismatch, "expected", k.String()), "actual", v.kind.String())
	}

	switch k {
	case KindText:
		return v.text, nil
	case KindBoolean:
		return strconv.FormatBool(v.Bool()), nil
	case KindInteger:
		return strconv.FormatInt(v.num, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64), nil
	case KindDate:
		return v.at.Format(DateLayout), nil
	case KindDateHour:
		return v.at.Format(DateHourLayout), nil
	case KindTimeInterval:
		return strconv.FormatInt(int64(v.Interval()/day), 10), nil
	case KindInvalid:
	}
	return "", zerr.With(ErrUnknownKind, "kind", int(k))
}
