package datamodel

import "github.com/google/uuid"

// DefaultKind discriminates the representations of a field default.
type DefaultKind uint8

// Default value kinds.
const (
	// DefaultLiteral is a plain literal value.
	DefaultLiteral DefaultKind = iota
	// DefaultEnum is a reference to an enum value by logical name.
	DefaultEnum
	// DefaultGenerator is a value produced by a generator expression,
	// such as uuid() or now().
	DefaultGenerator
)

// ValueGenerator names a default-value generator expression.
type ValueGenerator string

// Known generators. CUID and UUID run in the client and have no physical
// database representation; they must be carried forward explicitly when a
// schema is re-derived.
const (
	GeneratorCUID          ValueGenerator = "cuid"
	GeneratorUUID          ValueGenerator = "uuid"
	GeneratorNow           ValueGenerator = "now"
	GeneratorAutoIncrement ValueGenerator = "autoincrement"
)

// ClientSide reports whether the generator runs in the client rather than
// in the database.
func (g ValueGenerator) ClientSide() bool {
	return g == GeneratorCUID || g == GeneratorUUID
}

// Generate produces a value for client-side generators. The second return
// is false for generators that are evaluated by the database.
func (g ValueGenerator) Generate() (string, bool) {
	switch g {
	case GeneratorUUID:
		return uuid.NewString(), true
	case GeneratorCUID:
		// cuids are produced by the client runtime; a random UUID keeps
		// the same uniqueness guarantee for callers that only need one.
		return uuid.NewString(), true
	default:
		return "", false
	}
}

// DefaultValue is a field default.
type DefaultValue struct {
	// Kind discriminates the representation.
	Kind DefaultKind `msgpack:"kind" yaml:"kind"`
	// Value is the literal text or the enum value name, depending on Kind.
	Value string `msgpack:"value,omitempty" yaml:"value,omitempty"`
	// Generator is set when Kind is DefaultGenerator.
	Generator ValueGenerator `msgpack:"generator,omitempty" yaml:"generator,omitempty"`
}

// NewLiteral returns a literal default.
func NewLiteral(value string) *DefaultValue {
	return &DefaultValue{Kind: DefaultLiteral, Value: value}
}

// NewEnumDefault returns a default referencing an enum value.
func NewEnumDefault(value string) *DefaultValue {
	return &DefaultValue{Kind: DefaultEnum, Value: value}
}

// NewGenerated returns a generator default.
func NewGenerated(g ValueGenerator) *DefaultValue {
	return &DefaultValue{Kind: DefaultGenerator, Generator: g}
}

// Equal reports whether two defaults are identical. A nil default only
// equals another nil default.
func (d *DefaultValue) Equal(other *DefaultValue) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Kind == other.Kind && d.Value == other.Value && d.Generator == other.Generator
}

// IsGenerator reports whether the default uses the given generator.
func (d *DefaultValue) IsGenerator(g ValueGenerator) bool {
	return d != nil && d.Kind == DefaultGenerator && d.Generator == g
}

// IsEnumValue reports whether the default references the given enum value.
func (d *DefaultValue) IsEnumValue(value string) bool {
	return d != nil && d.Kind == DefaultEnum && d.Value == value
}
