package sqldiff

import "github.com/syssam/schemasync/dialect"

// SQLiteFlavor implements the differ policy for SQLite.
type SQLiteFlavor struct {
	features dialect.FeatureSet
}

// NewSQLite returns the SQLite flavor.
func NewSQLite(features dialect.FeatureSet) *SQLiteFlavor {
	return &SQLiteFlavor{features: features}
}

// Dialect implements Flavor.
func (f *SQLiteFlavor) Dialect() dialect.Dialect { return dialect.SQLite }

// TypeChange implements Flavor. SQLite types are affinities rather than
// strict types: any value fits any column, so no change is ever worse than
// risky.
func (f *SQLiteFlavor) TypeChange(cols Pair) TypeChange {
	if change := familyCast(cols); change != TypeChangeNotCastable {
		return change
	}
	return TypeChangeRisky
}

// IgnoreJSONDefaults implements Flavor.
func (f *SQLiteFlavor) IgnoreJSONDefaults() bool { return false }

// NamedConstraints implements Flavor. SQLite has no named default
// constraints.
func (f *SQLiteFlavor) NamedConstraints() bool { return false }
