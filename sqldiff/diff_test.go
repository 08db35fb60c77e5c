package sqldiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemasync/dialect"
)

func strCol(name string) Column {
	return Column{Name: name, Family: FamilyString, TypeRaw: "text"}
}

func TestChangesFlags(t *testing.T) {
	flavor := NewPostgres(nil)

	t.Run("NoChange", func(t *testing.T) {
		changes := Changes(Pair{Previous: strCol("name"), Next: strCol("name")}, flavor)
		assert.False(t, changes.DiffersInSomething())
		assert.Empty(t, changes.Changes())
		assert.Equal(t, TypeChangeNone, changes.TypeChange())
	})

	t.Run("Renaming", func(t *testing.T) {
		changes := Changes(Pair{Previous: strCol("name"), Next: strCol("full_name")}, flavor)
		assert.True(t, changes.ColumnWasRenamed())
		assert.False(t, changes.TypeChanged())
	})

	t.Run("Arity", func(t *testing.T) {
		prev, next := strCol("name"), strCol("name")
		next.Arity = Nullable
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.True(t, changes.ArityChanged())
		assert.False(t, changes.OnlyDefaultChanged())
	})

	t.Run("TypeChanged", func(t *testing.T) {
		prev := Column{Name: "age", Family: FamilyInt, TypeRaw: "integer"}
		next := Column{Name: "age", Family: FamilyBigInt, TypeRaw: "bigint"}
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.True(t, changes.TypeChanged())
		assert.True(t, changes.OnlyTypeChanged())
		assert.Equal(t, TypeChangeSafe, changes.TypeChange())
	})

	t.Run("Sequence", func(t *testing.T) {
		prev := Column{Name: "id", Family: FamilyInt, TypeRaw: "integer", AutoIncrement: true}
		next := Column{Name: "id", Family: FamilyInt, TypeRaw: "integer"}
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.True(t, changes.AutoincrementChanged())
	})

	t.Run("CoOccurrence", func(t *testing.T) {
		prev := Column{Name: "n", Family: FamilyInt, TypeRaw: "integer"}
		next := Column{Name: "m", Family: FamilyString, TypeRaw: "text", Arity: Nullable}
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		require.Equal(t, []ColumnChange{ChangeRenaming, ChangeArity, ChangeTypeChanged}, changes.Changes())
	})

	t.Run("OnlyDefaultChanged", func(t *testing.T) {
		prev, next := strCol("name"), strCol("name")
		prev.Default = &Default{Kind: DefaultValue, Value: "a"}
		next.Default = &Default{Kind: DefaultValue, Value: "b"}
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.True(t, changes.OnlyDefaultChanged())
		assert.True(t, changes.DefaultChanged())
	})
}

// TestDefaultsMatchTable asserts the full directional table. Equivalence is
// not symmetric: sequence removal is equivalent while value removal is not.
func TestDefaultsMatchTable(t *testing.T) {
	value := func(v string) *Default { return &Default{Kind: DefaultValue, Value: v} }
	now := func() *Default { return &Default{Kind: DefaultNow, Value: "now()"} }
	dbgen := func(x string) *Default { return &Default{Kind: DefaultDbGenerated, Value: x} }
	seq := func() *Default { return &Default{Kind: DefaultSequence, Value: "nextval('s'::regclass)"} }

	tests := []struct {
		name       string
		prev, next *Default
		match      bool
	}{
		{"AbsentVsAbsent", nil, nil, true},
		{"ValueVsSameValue", value("1"), value("1"), true},
		{"ValueVsOtherValue", value("1"), value("2"), false},
		{"ValueVsAbsent", value("1"), nil, false},
		{"AbsentVsValue", nil, value("1"), false},
		{"NowVsNow", now(), now(), true},
		{"NowVsAbsent", now(), nil, false},
		{"AbsentVsNow", nil, now(), false},
		{"NowVsValue", now(), value("1"), false},
		{"ValueVsNow", value("1"), now(), false},
		{"DbGenVsDbGenSame", dbgen("gen_random_uuid()"), dbgen("gen_random_uuid()"), true},
		{"DbGenVsDbGenCaseInsensitive", dbgen("GEN_RANDOM_UUID()"), dbgen("gen_random_uuid()"), true},
		{"DbGenVsDbGenOther", dbgen("uuid_generate_v4()"), dbgen("gen_random_uuid()"), false},
		{"DbGenVsValue", dbgen("x"), value("x"), false},
		{"DbGenVsNow", dbgen("now()"), now(), false},
		{"DbGenVsAbsent", dbgen("x"), nil, false},
		{"ValueVsDbGen", value("x"), dbgen("x"), false},
		{"NowVsDbGen", now(), dbgen("now()"), false},
		{"AbsentVsDbGen", nil, dbgen("x"), false},
		{"SequenceVsAbsent", seq(), nil, true},
		{"SequenceVsValue", seq(), value("1"), false},
		{"SequenceVsNow", seq(), now(), false},
		{"SequenceVsSequence", seq(), seq(), true},
		{"ValueVsSequence", value("1"), seq(), true},
		{"NowVsSequence", now(), seq(), true},
		{"DbGenVsSequence", dbgen("x"), seq(), true},
		{"AbsentVsSequence", nil, seq(), true},
	}
	flavor := NewPostgres(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := strCol("c"), strCol("c")
			prev.Default, next.Default = tt.prev, tt.next
			changes := Changes(Pair{Previous: prev, Next: next}, flavor)
			assert.Equal(t, !tt.match, changes.DefaultChanged())
		})
	}
}

func TestDefaultsMatchJSON(t *testing.T) {
	jsonCol := func(v string) Column {
		return Column{
			Name:    "data",
			Family:  FamilyJSON,
			TypeRaw: "jsonb",
			Default: &Default{Kind: DefaultValue, Value: v},
		}
	}

	t.Run("StructuralEquality", func(t *testing.T) {
		prev := jsonCol(`{"a": 1, "b": 2}`)
		next := jsonCol(`{"b":2,"a":1}`)
		changes := Changes(Pair{Previous: prev, Next: next}, NewPostgres(nil))
		assert.False(t, changes.DefaultChanged(), "key order does not matter")
	})

	t.Run("StructuralDifference", func(t *testing.T) {
		prev := jsonCol(`{"a": 1}`)
		next := jsonCol(`{"a": 2}`)
		changes := Changes(Pair{Previous: prev, Next: next}, NewPostgres(nil))
		assert.True(t, changes.DefaultChanged())
	})

	t.Run("UnparsableFailsOpen", func(t *testing.T) {
		// A side that does not parse is assumed to be a lossy
		// introspection artifact, not a real difference.
		prev := jsonCol(`{"a": 1}`)
		next := jsonCol(`{"a":`)
		changes := Changes(Pair{Previous: prev, Next: next}, NewPostgres(nil))
		assert.False(t, changes.DefaultChanged())
	})

	t.Run("JSONShapedText", func(t *testing.T) {
		prev, next := strCol("c"), strCol("c")
		prev.Default = &Default{Kind: DefaultValue, Value: `{"a": 1}`}
		next.Default = &Default{Kind: DefaultValue, Value: `{ "a" : 1 }`}
		changes := Changes(Pair{Previous: prev, Next: next}, NewPostgres(nil))
		assert.False(t, changes.DefaultChanged(), "JSON-shaped text compares structurally")
	})

	t.Run("MySQLIgnoresJSONDefaults", func(t *testing.T) {
		prev := jsonCol(`{"a": 1}`)
		next := jsonCol(`{"a": 2}`)
		changes := Changes(Pair{Previous: prev, Next: next}, NewMySQL(nil))
		assert.False(t, changes.DefaultChanged(), "unreliable JSON defaults are never compared")
	})
}

func TestDefaultsMatchConstraintNames(t *testing.T) {
	named := func(v, name string) *Default {
		return &Default{Kind: DefaultValue, Value: v, ConstraintName: name}
	}

	t.Run("Enabled", func(t *testing.T) {
		flavor := NewSQLServer(dialect.FeatureSet{dialect.FeatureNamedConstraints})
		prev, next := strCol("c"), strCol("c")
		prev.Default, next.Default = named("1", "DF_custom"), named("1", "DF_other")
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.True(t, changes.DefaultChanged(), "same value, different constraint name")

		next.Default = named("1", "DF_custom")
		changes = Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.False(t, changes.DefaultChanged())
	})

	t.Run("Disabled", func(t *testing.T) {
		flavor := NewSQLServer(nil)
		prev, next := strCol("c"), strCol("c")
		prev.Default, next.Default = named("1", "DF_custom"), named("1", "DF_other")
		changes := Changes(Pair{Previous: prev, Next: next}, flavor)
		assert.False(t, changes.DefaultChanged(), "names never disqualify equivalence when disabled")
	})
}
