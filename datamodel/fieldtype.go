package datamodel

// Kind enumerates the scalar kinds a field type can have.
type Kind uint8

// Field type kinds.
const (
	KindString Kind = iota
	KindInt
	KindBigInt
	KindFloat
	KindDecimal
	KindBool
	KindDateTime
	KindJSON
	KindBytes
	KindEnum
	KindUnsupported
)

// String returns the textual name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindJSON:
		return "json"
	case KindBytes:
		return "bytes"
	case KindEnum:
		return "enum"
	default:
		return "unsupported"
	}
}

// FieldType is the type of a scalar field. Enum types additionally carry
// the logical name of the referenced enum.
type FieldType struct {
	// Kind is the scalar kind.
	Kind Kind `msgpack:"kind" yaml:"kind"`
	// Enum is the referenced enum's logical name when Kind is KindEnum.
	Enum string `msgpack:"enum,omitempty" yaml:"enum,omitempty"`
}

// StringType returns a string field type.
func StringType() FieldType { return FieldType{Kind: KindString} }

// IntType returns an int field type.
func IntType() FieldType { return FieldType{Kind: KindInt} }

// DateTimeType returns a datetime field type.
func DateTimeType() FieldType { return FieldType{Kind: KindDateTime} }

// JSONType returns a json field type.
func JSONType() FieldType { return FieldType{Kind: KindJSON} }

// EnumType returns a field type referencing the named enum.
func EnumType(name string) FieldType { return FieldType{Kind: KindEnum, Enum: name} }

// IsString reports whether the type is a plain string.
func (t FieldType) IsString() bool { return t.Kind == KindString }

// IsDateTime reports whether the type is a datetime.
func (t FieldType) IsDateTime() bool { return t.Kind == KindDateTime }

// IsEnum reports whether the type references the named enum.
func (t FieldType) IsEnum(name string) bool { return t.Kind == KindEnum && t.Enum == name }
