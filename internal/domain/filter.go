package domain

import "time"

// Op is a comparison applied by a Condition.
type Op int

const (
	OpEq Op = iota
	OpGte
	OpLte
)

// Condition is one store-independent predicate over an alarm field.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// AlarmFilter holds the optional predicates of an alarm query. Nil fields are ignored,
// the rest are ANDed together.
type AlarmFilter struct {
	StartTime     *time.Time
	EndTime       *time.Time
	MinTemp       *float64
	MaxTemp       *float64
	SmokeDetected *bool
	FireDetected  *bool
	Cleared       *bool
}

type conditions []Condition

func (c conditions) add(present bool, field string, op Op, value func() any) conditions {
	if !present {
		return c
	}
	return append(c, Condition{Field: field, Op: op, Value: value()})
}

// Conditions returns the predicates present in f. An empty result selects every alarm.
func (f AlarmFilter) Conditions() []Condition {
	var c conditions
	c = c.add(f.StartTime != nil, FieldTimestamp, OpGte, func() any { return *f.StartTime })
	c = c.add(f.EndTime != nil, FieldTimestamp, OpLte, func() any { return *f.EndTime })
	c = c.add(f.MinTemp != nil, FieldTemperature, OpGte, func() any { return *f.MinTemp })
	c = c.add(f.MaxTemp != nil, FieldTemperature, OpLte, func() any { return *f.MaxTemp })
	c = c.add(f.FireDetected != nil, FieldFireDetected, OpEq, func() any { return *f.FireDetected })
	c = c.add(f.SmokeDetected != nil, FieldSmokeDetected, OpEq, func() any { return *f.SmokeDetected })
	c = c.add(f.Cleared != nil, FieldCleared, OpEq, func() any { return *f.Cleared })
	return c
}

// Match reports whether a satisfies every condition of f.
func (f AlarmFilter) Match(a Alarm) bool {
	for _, c := range f.Conditions() {
		if !c.Match(a) {
			return false
		}
	}
	return true
}

// Match evaluates c against a. Unknown fields or mistyped values never match.
func (c Condition) Match(a Alarm) bool {
	switch c.Field {
	case FieldTimestamp:
		v, ok := c.Value.(time.Time)
		if !ok {
			return false
		}
		return compare(a.Timestamp.Compare(v), c.Op)
	case FieldTemperature:
		v, ok := c.Value.(float64)
		if !ok {
			return false
		}
		switch {
		case a.Temperature < v:
			return compare(-1, c.Op)
		case a.Temperature > v:
			return compare(1, c.Op)
		default:
			return compare(0, c.Op)
		}
	case FieldSmokeDetected:
		return matchBool(a.SmokeDetected, c)
	case FieldFireDetected:
		return matchBool(a.FireDetected, c)
	case FieldCleared:
		return matchBool(a.Cleared, c)
	}
	return false
}

func matchBool(got bool, c Condition) bool {
	v, ok := c.Value.(bool)
	return ok && c.Op == OpEq && got == v
}

func compare(cmp int, op Op) bool {
	switch op {
	case OpEq:
		return cmp == 0
	case OpGte:
		return cmp >= 0
	case OpLte:
		return cmp <= 0
	}
	return false
}
