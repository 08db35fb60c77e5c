// Package schemasync keeps a user-authored database schema model in sync
// with the structure derived from a live database, and classifies
// column-level changes between two schema snapshots.
//
// The module contains two independent cores:
//
//   - reintrospect: given the previously authored model and a freshly
//     derived one, recover the user's logical names, ordering and
//     application-level semantics so that re-deriving the schema does not
//     rename everything. See reintrospect.Enrich.
//
//   - sqldiff: given a pair of matching columns from two schema versions,
//     compute exactly what changed (name, arity, type, default, identity
//     generation) and whether a type change is safely automatable.
//     See sqldiff.Changes.
//
// Both cores are pure tree computations. They never talk to a database and
// never emit SQL; introspection connectors and migration planners sit on
// either side of them.
//
// # Packages
//
//   - datamodel: the in-memory schema tree (models, fields, relations,
//     enums) shared by both cores
//   - dialect: dialect identifiers and capability feature flags
//   - reintrospect: the reconciliation engine
//   - sqldiff: the column differ and per-dialect type-change flavors
package schemasync
