package sqldiff

import "strings"

// ColumnChange is one kind of column-level change. Changes are independent
// and may co-occur; a ColumnChanges value holds them as a bitset.
type ColumnChange uint8

// Column change kinds.
const (
	// ChangeRenaming is set when the column names differ.
	ChangeRenaming ColumnChange = 1 << iota
	// ChangeArity is set when nullability or list-ness differs.
	ChangeArity
	// ChangeTypeChanged is set when the flavor reports the types as
	// incompatible.
	ChangeTypeChanged
	// ChangeDefault is set when the defaults are not equivalent.
	ChangeDefault
	// ChangeSequence is set when auto-increment-ness differs.
	ChangeSequence
)

// String returns the names of the set change kinds.
func (c ColumnChange) String() string {
	var parts []string
	for _, entry := range []struct {
		flag ColumnChange
		name string
	}{
		{ChangeRenaming, "renaming"},
		{ChangeArity, "arity"},
		{ChangeTypeChanged, "type"},
		{ChangeDefault, "default"},
		{ChangeSequence, "sequence"},
	} {
		if c&entry.flag != 0 {
			parts = append(parts, entry.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// TypeChange classifies a column type change by how safely it can be
// applied automatically.
type TypeChange uint8

// Type change classifications. TypeChangeNone means the types are
// compatible and no type migration is needed.
const (
	TypeChangeNone TypeChange = iota
	TypeChangeSafe
	TypeChangeRisky
	TypeChangeNotCastable
)

// String returns the textual name of the classification.
func (t TypeChange) String() string {
	switch t {
	case TypeChangeNone:
		return "none"
	case TypeChangeSafe:
		return "safe"
	case TypeChangeRisky:
		return "risky"
	default:
		return "not-castable"
	}
}

// ColumnChanges is the result of diffing one column pair.
type ColumnChanges struct {
	typeChange TypeChange
	changes    ColumnChange
}

// DiffersInSomething reports whether any change was detected.
func (c ColumnChanges) DiffersInSomething() bool {
	return c.changes != 0
}

// TypeChange returns the type-change classification, TypeChangeNone when
// the types are compatible.
func (c ColumnChanges) TypeChange() TypeChange {
	return c.typeChange
}

// TypeChanged reports whether the column type changed.
func (c ColumnChanges) TypeChanged() bool {
	return c.changes&ChangeTypeChanged != 0
}

// ArityChanged reports whether nullability or list-ness changed.
func (c ColumnChanges) ArityChanged() bool {
	return c.changes&ChangeArity != 0
}

// DefaultChanged reports whether the default changed.
func (c ColumnChanges) DefaultChanged() bool {
	return c.changes&ChangeDefault != 0
}

// AutoincrementChanged reports whether auto-increment-ness changed.
func (c ColumnChanges) AutoincrementChanged() bool {
	return c.changes&ChangeSequence != 0
}

// ColumnWasRenamed reports whether the column was renamed.
func (c ColumnChanges) ColumnWasRenamed() bool {
	return c.changes&ChangeRenaming != 0
}

// OnlyDefaultChanged reports whether the default is the only change.
func (c ColumnChanges) OnlyDefaultChanged() bool {
	return c.changes == ChangeDefault
}

// OnlyTypeChanged reports whether the type is the only change.
func (c ColumnChanges) OnlyTypeChanged() bool {
	return c.changes == ChangeTypeChanged
}

// Changes returns the individual change kinds that are set, in declaration
// order.
func (c ColumnChanges) Changes() []ColumnChange {
	var out []ColumnChange
	for _, flag := range []ColumnChange{ChangeRenaming, ChangeArity, ChangeTypeChanged, ChangeDefault, ChangeSequence} {
		if c.changes&flag != 0 {
			out = append(out, flag)
		}
	}
	return out
}
