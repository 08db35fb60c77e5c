package datamodel

// Enum is a named set of values, mapped to a database enum type. On
// dialects without a schema-level enum type the database name is the name
// of the first column the enum was inferred from.
type Enum struct {
	// Name is the logical, user-facing name.
	Name string `msgpack:"name" yaml:"name"`
	// DatabaseName is the explicit name mapping. Empty means the logical
	// name is used as-is.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Values holds the enum values in declaration order.
	Values []*EnumValue `msgpack:"values" yaml:"values"`
	// Documentation is the user-authored doc comment.
	Documentation string `msgpack:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// DBName returns the resolved database name of the enum.
func (e *Enum) DBName() string {
	if e.DatabaseName != "" {
		return e.DatabaseName
	}
	return e.Name
}

// FindValue returns the first value with the given logical name.
func (e *Enum) FindValue(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// FindValueByDBName returns the first value whose resolved database name
// equals dbName.
func (e *Enum) FindValueByDBName(dbName string) *EnumValue {
	for _, v := range e.Values {
		if v.DBName() == dbName {
			return v
		}
	}
	return nil
}

// ValueNames returns the logical value names in declaration order.
func (e *Enum) ValueNames() []string {
	names := make([]string, len(e.Values))
	for i, v := range e.Values {
		names[i] = v.Name
	}
	return names
}

// SameValues reports whether both enums declare the same logical values in
// the same order.
func (e *Enum) SameValues(other *Enum) bool {
	return stringsEqual(e.ValueNames(), other.ValueNames())
}

// EnumValue is one value of an enum.
type EnumValue struct {
	// Name is the logical, user-facing name.
	Name string `msgpack:"name" yaml:"name"`
	// DatabaseName is the explicit name mapping. Empty means the logical
	// name is used as-is.
	DatabaseName string `msgpack:"database_name,omitempty" yaml:"database_name,omitempty"`
	// Documentation is the user-authored doc comment.
	Documentation string `msgpack:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// DBName returns the resolved database name of the value.
func (v *EnumValue) DBName() string {
	if v.DatabaseName != "" {
		return v.DatabaseName
	}
	return v.Name
}
