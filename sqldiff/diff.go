package sqldiff

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Changes computes the change set for one pre-aligned column pair. It never
// fails; a column with no detectable change yields an empty set.
func Changes(cols Pair, flavor Flavor) ColumnChanges {
	var changes ColumnChange
	typeChange := flavor.TypeChange(cols)

	if cols.Previous.Name != cols.Next.Name {
		changes |= ChangeRenaming
	}
	if cols.Previous.Arity != cols.Next.Arity {
		changes |= ChangeArity
	}
	if typeChange != TypeChangeNone {
		changes |= ChangeTypeChanged
	}
	if !defaultsMatch(cols, flavor) {
		changes |= ChangeDefault
	}
	if cols.Previous.AutoIncrement != cols.Next.AutoIncrement {
		changes |= ChangeSequence
	}

	return ColumnChanges{typeChange: typeChange, changes: changes}
}

// defaultsMatch reports whether the two defaults represent no effective
// change. The precedence of the rules matters; see the package tests for
// the full directional table.
func defaultsMatch(cols Pair, flavor Flavor) bool {
	// Some dialects cannot reliably read JSON defaults back from the
	// catalog; comparing them would flag spurious changes on every run.
	if flavor.IgnoreJSONDefaults() && (cols.Previous.Family.IsJSON() || cols.Next.Family.IsJSON()) {
		return true
	}

	prev, next := cols.Previous.Default, cols.Next.Default

	if flavor.NamedConstraints() && constraintName(prev) != constraintName(next) {
		return false
	}

	switch {
	case prev == nil && next == nil:
		return true

	// Arrival of a sequence is handled by a separate migration step, as
	// is removal (the sequence itself is dropped separately).
	case next != nil && next.Kind == DefaultSequence:
		return true
	case prev != nil && prev.Kind == DefaultSequence:
		return next == nil

	case prev == nil || next == nil:
		return false

	case prev.Kind == DefaultValue && next.Kind == DefaultValue:
		if jsonValued(cols.Previous, prev) || jsonValued(cols.Next, next) {
			return jsonDefaultsMatch(prev.Value, next.Value)
		}
		return prev.Value == next.Value

	case prev.Kind == DefaultNow && next.Kind == DefaultNow:
		return true

	case prev.Kind == DefaultDbGenerated && next.Kind == DefaultDbGenerated:
		return strings.EqualFold(prev.Value, next.Value)

	default:
		return false
	}
}

func constraintName(d *Default) string {
	if d == nil {
		return ""
	}
	return d.ConstraintName
}

// jsonValued reports whether a literal default should be compared as JSON:
// either the column itself is JSON-typed, or the text is JSON-shaped.
func jsonValued(col Column, d *Default) bool {
	return col.Family.IsJSON() || d.JSONShaped()
}

// jsonDefaultsMatch compares two JSON defaults structurally. A side that
// fails to parse is assumed equivalent: introspection renders JSON defaults
// lossily on some dialects, and a spurious detected difference is more
// disruptive here than a missed one.
func jsonDefaultsMatch(previous, next string) bool {
	var prevVal, nextVal any
	if err := json.Unmarshal([]byte(previous), &prevVal); err != nil {
		return true
	}
	if err := json.Unmarshal([]byte(next), &nextVal); err != nil {
		return true
	}
	return reflect.DeepEqual(prevVal, nextVal)
}
