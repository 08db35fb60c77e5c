// Package sqldiff computes column-level changes between two schema
// snapshots.
//
// The package operates on pre-aligned column pairs: an outer differ decides
// which previous column corresponds to which next column and calls Changes
// once per pair. The result is a small set of independent change flags plus
// a classification of the type change (safe, risky, or not castable)
// answered by the per-dialect Flavor.
package sqldiff

import "encoding/json"

// Arity describes the cardinality of a column.
type Arity uint8

// Column arities.
const (
	Required Arity = iota
	Nullable
	List
)

// String returns the textual name of the arity.
func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Nullable:
		return "nullable"
	default:
		return "list"
	}
}

// Family is the broad class of a column's type, used for compatibility
// decisions independent of the exact native type.
type Family uint8

// Column type families.
const (
	FamilyInt Family = iota
	FamilyBigInt
	FamilyFloat
	FamilyDecimal
	FamilyBoolean
	FamilyString
	FamilyDateTime
	FamilyJSON
	FamilyBytes
	FamilyEnum
	FamilyUUID
	FamilyUnsupported
)

// IsJSON reports whether the family is JSON.
func (f Family) IsJSON() bool { return f == FamilyJSON }

// DefaultKind discriminates column default representations as read from
// the database catalog.
type DefaultKind uint8

// Column default kinds.
const (
	// DefaultValue is a concrete literal default.
	DefaultValue DefaultKind = iota
	// DefaultNow is a current-timestamp default.
	DefaultNow
	// DefaultDbGenerated is an arbitrary database-evaluated expression.
	DefaultDbGenerated
	// DefaultSequence is a sequence-backed default (nextval).
	DefaultSequence
)

// Default is a column default as read from the catalog. A nil *Default
// means the column has no default.
type Default struct {
	// Kind discriminates the representation.
	Kind DefaultKind
	// Value is the literal text or generated expression.
	Value string
	// ConstraintName is the explicit default-constraint name, when the
	// dialect supports named default constraints. Empty means unnamed.
	ConstraintName string
}

// JSONShaped reports whether the default's value parses as JSON.
func (d *Default) JSONShaped() bool {
	if d == nil || d.Kind != DefaultValue {
		return false
	}
	return json.Valid([]byte(d.Value))
}

// Column is one column of one schema snapshot, reduced to what the differ
// needs.
type Column struct {
	// Name is the column name.
	Name string
	// Arity is the column's cardinality.
	Arity Arity
	// Family is the broad type class.
	Family Family
	// TypeRaw is the native type as reported by the catalog, used by
	// flavors for exact-type comparisons.
	TypeRaw string
	// Default is the column default, nil when absent.
	Default *Default
	// AutoIncrement reports whether the column value is produced by an
	// identity/auto-increment mechanism.
	AutoIncrement bool
}

// Pair holds the previous and next versions of one column, aligned by the
// outer differ.
type Pair struct {
	Previous Column
	Next     Column
}
