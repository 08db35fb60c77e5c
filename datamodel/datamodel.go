// Package datamodel defines the in-memory schema tree shared by the
// reconciliation engine and the column differ.
//
// A Datamodel is a flat collection of models and enums. Every entity has a
// logical name (the user-facing one) and an optional database name pinning
// it to the physical object it maps to. The resolved database name of an
// entity is its database name when set, and its logical name otherwise.
//
// The tree is a plain value graph: lookups walk the slices in declaration
// order, and all Find helpers return the first match, which is the matching
// policy the reconciliation engine relies on.
package datamodel

// Datamodel is the root of a schema tree.
type Datamodel struct {
	// Models holds the models in declaration order.
	Models []*Model `msgpack:"models" yaml:"models"`
	// Enums holds the enums in declaration order.
	Enums []*Enum `msgpack:"enums" yaml:"enums"`
}

// FieldRef points at a scalar field together with its owning model.
type FieldRef struct {
	Model *Model
	Field *ScalarField
}

// FindModel returns the first model with the given logical name.
func (dm *Datamodel) FindModel(name string) *Model {
	for _, m := range dm.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FindModelByDBName returns the first model whose resolved database name
// equals dbName.
func (dm *Datamodel) FindModelByDBName(dbName string) *Model {
	for _, m := range dm.Models {
		if m.DBName() == dbName {
			return m
		}
	}
	return nil
}

// FindEnum returns the first enum with the given logical name.
func (dm *Datamodel) FindEnum(name string) *Enum {
	for _, e := range dm.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindEnumByDBName returns the first enum whose resolved database name
// equals dbName.
func (dm *Datamodel) FindEnumByDBName(dbName string) *Enum {
	for _, e := range dm.Enums {
		if e.DBName() == dbName {
			return e
		}
	}
	return nil
}

// RelationFieldsTo returns every relation field in the tree whose relation
// descriptor targets the model with the given logical name, in declaration
// order.
func (dm *Datamodel) RelationFieldsTo(model string) []*RelationField {
	var out []*RelationField
	for _, m := range dm.Models {
		for _, rf := range m.Relations {
			if rf.Info.To == model {
				out = append(out, rf)
			}
		}
	}
	return out
}

// RelatedField returns the far side of a relation field: the relation field
// on the target model that carries the same relation name. For self
// relations the near field itself is skipped. Returns the owning model and
// nil when no counterpart exists.
func (dm *Datamodel) RelatedField(rf *RelationField) (*Model, *RelationField) {
	m := dm.FindModel(rf.Info.To)
	if m == nil {
		return nil, nil
	}
	for _, other := range m.Relations {
		if other == rf {
			continue
		}
		if other.Info.Name == rf.Info.Name {
			return m, other
		}
	}
	return m, nil
}

// EnumFields returns every scalar field whose type references the enum with
// the given logical name, in declaration order.
func (dm *Datamodel) EnumFields(enumName string) []FieldRef {
	var out []FieldRef
	for _, m := range dm.Models {
		for _, f := range m.Fields {
			if f.Type.IsEnum(enumName) {
				out = append(out, FieldRef{Model: m, Field: f})
			}
		}
	}
	return out
}
