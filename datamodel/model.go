package datamodel

// Model is one entity in the schema tree, mapped to a table.
type Model struct {
	// Name is the logical, user-facing name.
	Name string `msgpack:"name" yaml:"name"`
	// DatabaseName is the explicit name mapping to the table. Empty means
	// the logical name is used as-is.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Fields holds the scalar fields in declaration order.
	Fields []*ScalarField `msgpack:"fields" yaml:"fields"`
	// Relations holds the relation fields in declaration order.
	Relations []*RelationField `msgpack:"relations,omitempty" yaml:"relations,omitempty"`
	// Indexes holds the secondary indexes of the model.
	Indexes []*Index `msgpack:"indexes,omitempty" yaml:"indexes,omitempty"`
	// PrimaryKey is the model's primary key, if any.
	PrimaryKey *PrimaryKey `msgpack:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	// Ignored marks the model as excluded from client generation.
	Ignored bool `msgpack:"ignored,omitempty" yaml:"ignored,omitempty"`
	// Documentation is the user-authored doc comment.
	Documentation string `msgpack:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// DBName returns the resolved database name of the model.
func (m *Model) DBName() string {
	if m.DatabaseName != "" {
		return m.DatabaseName
	}
	return m.Name
}

// FindField returns the first scalar field with the given logical name.
func (m *Model) FindField(name string) *ScalarField {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FindFieldByDBName returns the first scalar field whose resolved database
// name equals dbName.
func (m *Model) FindFieldByDBName(dbName string) *ScalarField {
	for _, f := range m.Fields {
		if f.DBName() == dbName {
			return f
		}
	}
	return nil
}

// FindRelation returns the first relation field with the given name.
func (m *Model) FindRelation(name string) *RelationField {
	for _, rf := range m.Relations {
		if rf.Name == name {
			return rf
		}
	}
	return nil
}

// FindIndexByDBName returns the first index whose database name equals
// dbName.
func (m *Model) FindIndexByDBName(dbName string) *Index {
	for _, ix := range m.Indexes {
		if ix.DatabaseName == dbName {
			return ix
		}
	}
	return nil
}

// ScalarField is a column-backed field of a model.
type ScalarField struct {
	// Name is the logical, user-facing name.
	Name string `msgpack:"name" yaml:"name"`
	// DatabaseName is the explicit name mapping to the column. Empty means
	// the logical name is used as-is.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Type is the field type.
	Type FieldType `msgpack:"type" yaml:"type"`
	// Default is the field's default value, if any.
	Default *DefaultValue `msgpack:"default,omitempty" yaml:"default,omitempty"`
	// Ignored marks the field as excluded from client generation.
	Ignored bool `msgpack:"ignored,omitempty" yaml:"ignored,omitempty"`
	// UpdatedAt marks a timestamp field that is set to now() on every
	// update by the client. This has no physical representation in the
	// database.
	UpdatedAt bool `msgpack:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	// Documentation is the user-authored doc comment.
	Documentation string `msgpack:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// DBName returns the resolved database name of the field.
func (f *ScalarField) DBName() string {
	if f.DatabaseName != "" {
		return f.DatabaseName
	}
	return f.Name
}

// RelationField is a virtual field representing one endpoint of a relation.
// It has no column of its own; the owning side's foreign-key columns are
// listed in Info.Fields.
type RelationField struct {
	// Name is the display name of the field.
	Name string `msgpack:"name" yaml:"name"`
	// IsList reports whether the field holds many related records.
	IsList bool `msgpack:"is_list,omitempty" yaml:"is_list,omitempty"`
	// Info is the relation descriptor of this endpoint.
	Info RelationInfo `msgpack:"info" yaml:"info"`
	// Documentation is the user-authored doc comment.
	Documentation string `msgpack:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// RelationInfo describes one endpoint of a foreign-key relation.
type RelationInfo struct {
	// To is the logical name of the target model.
	To string `msgpack:"to" yaml:"to"`
	// Fields lists the owning side's foreign-key fields by logical name.
	Fields []string `msgpack:"fields,omitempty" yaml:"fields,omitempty"`
	// References lists the referenced fields on the target model.
	References []string `msgpack:"references,omitempty" yaml:"references,omitempty"`
	// Name is the logical relation name. For many-to-many relations it
	// maps to the join table name and cannot be changed without a
	// database change.
	Name string `msgpack:"name,omitempty" yaml:"name,omitempty"`
}

// Equal reports whether two relation descriptors are identical.
func (ri RelationInfo) Equal(other RelationInfo) bool {
	return ri.To == other.To &&
		ri.Name == other.Name &&
		stringsEqual(ri.Fields, other.Fields) &&
		stringsEqual(ri.References, other.References)
}

// EqualIgnoringName reports whether two relation descriptors are identical
// apart from their relation names.
func (ri RelationInfo) EqualIgnoringName(other RelationInfo) bool {
	return ri.To == other.To &&
		stringsEqual(ri.Fields, other.Fields) &&
		stringsEqual(ri.References, other.References)
}

// Index is a secondary index on a model.
type Index struct {
	// Name is the explicit logical name, empty when the index is unnamed
	// in the schema language.
	Name string `msgpack:"name,omitempty" yaml:"name,omitempty"`
	// DatabaseName is the physical index name.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Fields lists the indexed fields by logical name.
	Fields []string `msgpack:"fields" yaml:"fields"`
	// Unique reports whether the index enforces uniqueness.
	Unique bool `msgpack:"unique,omitempty" yaml:"unique,omitempty"`
}

// PrimaryKey is the primary key of a model.
type PrimaryKey struct {
	// Name is the explicit logical name, empty when unnamed.
	Name string `msgpack:"name,omitempty" yaml:"name,omitempty"`
	// DatabaseName is the physical constraint name.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Fields lists the key fields by logical name.
	Fields []string `msgpack:"fields" yaml:"fields"`
}

// ReplaceFieldName rewrites old to new inside a field-name list, in place.
func ReplaceFieldName(fields []string, old, new string) {
	for i := range fields {
		if fields[i] == old {
			fields[i] = new
		}
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
