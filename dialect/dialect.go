// Package dialect provides database dialect identifiers and capability
// feature flags for schemasync.
//
// A Dialect names the SQL family a schema was derived from. Capability
// differences between dialects are expressed in two ways: coarse feature
// flags (see Feature) carried on the reconciliation context, and the
// per-dialect flavor objects implemented in package sqldiff.
package dialect

// Dialect identifies a supported SQL dialect.
type Dialect string

// Supported dialects.
const (
	Postgres  Dialect = "postgres"
	MySQL     Dialect = "mysql"
	SQLite    Dialect = "sqlite"
	SQLServer Dialect = "sqlserver"
)

// IsMySQLFamily reports whether the dialect belongs to the MySQL family.
// MySQL-family dialects have no schema-level enum type; enum identity is
// inferred per column, which changes how enum names are recovered.
func (d Dialect) IsMySQLFamily() bool {
	return d == MySQL
}

// String returns the dialect name.
func (d Dialect) String() string {
	return string(d)
}
