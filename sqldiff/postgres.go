package sqldiff

import "github.com/syssam/schemasync/dialect"

// PostgresFlavor implements the differ policy for PostgreSQL.
type PostgresFlavor struct {
	features dialect.FeatureSet
}

// NewPostgres returns the PostgreSQL flavor.
func NewPostgres(features dialect.FeatureSet) *PostgresFlavor {
	return &PostgresFlavor{features: features}
}

// Dialect implements Flavor.
func (f *PostgresFlavor) Dialect() dialect.Dialect { return dialect.Postgres }

// TypeChange implements Flavor. PostgreSQL follows the shared family cast
// table, with list columns handled first: changing the dimensionality of a
// column has no general cast path.
func (f *PostgresFlavor) TypeChange(cols Pair) TypeChange {
	if (cols.Previous.Arity == List) != (cols.Next.Arity == List) {
		if cols.Previous.Family == cols.Next.Family {
			return TypeChangeNone
		}
		return TypeChangeNotCastable
	}
	return familyCast(cols)
}

// IgnoreJSONDefaults implements Flavor. PostgreSQL reads JSON defaults back
// faithfully.
func (f *PostgresFlavor) IgnoreJSONDefaults() bool { return false }

// NamedConstraints implements Flavor.
func (f *PostgresFlavor) NamedConstraints() bool {
	return f.features.Has(dialect.FeatureNamedConstraints)
}
