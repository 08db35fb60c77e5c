// Package reintrospect implements the reconciliation engine that runs
// after a schema is re-derived from a live database.
//
// Re-deriving a schema produces a tree whose names come from the database
// catalog, not from the user. Enrich matches that fresh tree against the
// previously authored one by database-level identity, restores the user's
// logical names, declaration order and application-level semantics, and
// reports what it recovered as warnings.
package reintrospect

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/schemasync/dialect"
)

// Context carries the connector-supplied settings for one reconciliation
// run: the active dialect and the feature flags in effect.
type Context struct {
	// Dialect is the SQL dialect the new tree was derived from.
	Dialect dialect.Dialect
	// Features holds the active capability flags.
	Features dialect.FeatureSet
}

// HasNamedConstraints reports whether explicit constraint names are active.
func (c *Context) HasNamedConstraints() bool {
	return c.Features.Has(dialect.FeatureNamedConstraints)
}

type contextConfig struct {
	Dialect  string   `yaml:"dialect"`
	Features []string `yaml:"features"`
}

// ParseContext reads a Context from YAML, the form the connector layer
// ships its settings in:
//
//	dialect: postgres
//	features:
//	  - namedconstraints
func ParseContext(data []byte) (*Context, error) {
	var cfg contextConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("schemasync: parsing context: %w", err)
	}
	ctx := &Context{Dialect: dialect.Dialect(cfg.Dialect)}
	switch ctx.Dialect {
	case dialect.Postgres, dialect.MySQL, dialect.SQLite, dialect.SQLServer:
	default:
		return nil, fmt.Errorf("schemasync: unknown dialect %q", cfg.Dialect)
	}
	for _, name := range cfg.Features {
		f, ok := dialect.FeatureByName(name)
		if !ok {
			return nil, fmt.Errorf("schemasync: unknown feature %q", name)
		}
		ctx.Features = append(ctx.Features, f)
	}
	return ctx, nil
}
