package sqldiff

import "github.com/syssam/schemasync/dialect"

// SQLServerFlavor implements the differ policy for Microsoft SQL Server.
type SQLServerFlavor struct {
	features dialect.FeatureSet
}

// NewSQLServer returns the SQL Server flavor.
func NewSQLServer(features dialect.FeatureSet) *SQLServerFlavor {
	return &SQLServerFlavor{features: features}
}

// Dialect implements Flavor.
func (f *SQLServerFlavor) Dialect() dialect.Dialect { return dialect.SQLServer }

// TypeChange implements Flavor. SQL Server has no native JSON or enum
// types; both are stored as text, so moves between them and strings are
// plain string changes.
func (f *SQLServerFlavor) TypeChange(cols Pair) TypeChange {
	cols.Previous.Family = textualAsString(cols.Previous.Family)
	cols.Next.Family = textualAsString(cols.Next.Family)
	return familyCast(cols)
}

func textualAsString(fam Family) Family {
	if fam == FamilyJSON || fam == FamilyEnum {
		return FamilyString
	}
	return fam
}

// IgnoreJSONDefaults implements Flavor.
func (f *SQLServerFlavor) IgnoreJSONDefaults() bool { return false }

// NamedConstraints implements Flavor. SQL Server names every default
// constraint, so names take part in default comparison whenever the
// feature is active.
func (f *SQLServerFlavor) NamedConstraints() bool {
	return f.features.Has(dialect.FeatureNamedConstraints)
}
