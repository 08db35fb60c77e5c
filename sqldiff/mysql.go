package sqldiff

import "github.com/syssam/schemasync/dialect"

// MySQLFlavor implements the differ policy for MySQL and MariaDB.
type MySQLFlavor struct {
	features dialect.FeatureSet
}

// NewMySQL returns the MySQL flavor.
func NewMySQL(features dialect.FeatureSet) *MySQLFlavor {
	return &MySQLFlavor{features: features}
}

// Dialect implements Flavor.
func (f *MySQLFlavor) Dialect() dialect.Dialect { return dialect.MySQL }

// TypeChange implements Flavor. MySQL casts boolean through tinyint, so
// integer/boolean moves are safe in both directions; everything else
// follows the shared family cast table.
func (f *MySQLFlavor) TypeChange(cols Pair) TypeChange {
	prev, next := cols.Previous.Family, cols.Next.Family
	if (prev == FamilyBoolean && (next == FamilyInt || next == FamilyBigInt)) ||
		(next == FamilyBoolean && prev == FamilyInt) {
		return TypeChangeSafe
	}
	return familyCast(cols)
}

// IgnoreJSONDefaults implements Flavor. MySQL normalizes JSON default
// expressions on write and does not read them back in their original
// shape, so comparing them flags spurious changes on every run.
func (f *MySQLFlavor) IgnoreJSONDefaults() bool { return true }

// NamedConstraints implements Flavor.
func (f *MySQLFlavor) NamedConstraints() bool {
	return f.features.Has(dialect.FeatureNamedConstraints)
}
