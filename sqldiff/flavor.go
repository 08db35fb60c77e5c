package sqldiff

import (
	"strings"

	"github.com/syssam/schemasync/dialect"
)

// Flavor answers dialect-specific policy questions for the differ. One
// implementation exists per supported dialect; all of them are stateless
// apart from the feature set they were constructed with.
type Flavor interface {
	// Dialect returns the dialect this flavor implements.
	Dialect() dialect.Dialect
	// TypeChange classifies the type change between the two columns.
	// TypeChangeNone means the types are compatible.
	TypeChange(cols Pair) TypeChange
	// IgnoreJSONDefaults reports whether JSON defaults are unreliable to
	// read back on this dialect and must not be compared.
	IgnoreJSONDefaults() bool
	// NamedConstraints reports whether explicit default-constraint names
	// are active for this run.
	NamedConstraints() bool
}

// ByDialect returns the flavor for the given dialect.
func ByDialect(d dialect.Dialect, features dialect.FeatureSet) (Flavor, bool) {
	switch d {
	case dialect.Postgres:
		return NewPostgres(features), true
	case dialect.MySQL:
		return NewMySQL(features), true
	case dialect.SQLite:
		return NewSQLite(features), true
	case dialect.SQLServer:
		return NewSQLServer(features), true
	default:
		return nil, false
	}
}

// familyCast is the shared family-level cast table. Dialects start from it
// and adjust where their type systems differ.
func familyCast(cols Pair) TypeChange {
	prev, next := cols.Previous, cols.Next

	if prev.Family == FamilyUnsupported || next.Family == FamilyUnsupported {
		if strings.EqualFold(prev.TypeRaw, next.TypeRaw) {
			return TypeChangeNone
		}
		return TypeChangeNotCastable
	}

	if prev.Family == next.Family {
		if strings.EqualFold(prev.TypeRaw, next.TypeRaw) {
			return TypeChangeNone
		}
		// Same family, different native type: a widening or precision
		// change the database can apply with a cast.
		if prev.Family == FamilyEnum {
			return TypeChangeRisky
		}
		return TypeChangeSafe
	}

	switch prev.Family {
	case FamilyInt:
		switch next.Family {
		case FamilyBigInt, FamilyDecimal, FamilyFloat, FamilyString:
			return TypeChangeSafe
		case FamilyBoolean:
			return TypeChangeRisky
		}
	case FamilyBigInt:
		switch next.Family {
		case FamilyDecimal, FamilyString:
			return TypeChangeSafe
		case FamilyInt, FamilyFloat:
			return TypeChangeRisky
		}
	case FamilyFloat:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		case FamilyInt, FamilyBigInt, FamilyDecimal:
			return TypeChangeRisky
		}
	case FamilyDecimal:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		case FamilyInt, FamilyBigInt, FamilyFloat:
			return TypeChangeRisky
		}
	case FamilyBoolean:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		case FamilyInt, FamilyBigInt:
			return TypeChangeRisky
		}
	case FamilyString:
		switch next.Family {
		case FamilyInt, FamilyBigInt, FamilyFloat, FamilyDecimal, FamilyDateTime, FamilyBoolean, FamilyEnum, FamilyUUID, FamilyJSON, FamilyBytes:
			return TypeChangeRisky
		}
	case FamilyDateTime:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		}
	case FamilyJSON:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		}
	case FamilyEnum:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		}
	case FamilyUUID:
		switch next.Family {
		case FamilyString:
			return TypeChangeSafe
		}
	case FamilyBytes:
		switch next.Family {
		case FamilyString:
			return TypeChangeRisky
		}
	}
	return TypeChangeNotCastable
}
