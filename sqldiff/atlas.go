package sqldiff

import (
	"strings"

	"ariga.io/atlas/sql/schema"
)

// ColumnFromAtlas converts an atlas-introspected column into the differ's
// column form. Callers holding an atlas schema graph can feed pairs to
// Changes directly:
//
//	pair := sqldiff.Pair{
//	    Previous: sqldiff.ColumnFromAtlas(prev),
//	    Next:     sqldiff.ColumnFromAtlas(next),
//	}
//
// Two properties are dialect-specific and not represented generically by
// atlas: list-ness (array columns) and identity generation. The caller sets
// Arity and AutoIncrement on the returned column when it knows better.
func ColumnFromAtlas(c *schema.Column) Column {
	col := Column{
		Name:  c.Name,
		Arity: Required,
	}
	if c.Type != nil {
		col.TypeRaw = c.Type.Raw
		col.Family = familyFromAtlas(c.Type.Type)
		if c.Type.Null {
			col.Arity = Nullable
		}
	}
	col.Default = defaultFromAtlas(c.Default)
	return col
}

func familyFromAtlas(t schema.Type) Family {
	switch t := t.(type) {
	case *schema.IntegerType:
		if strings.Contains(strings.ToLower(t.T), "bigint") {
			return FamilyBigInt
		}
		return FamilyInt
	case *schema.FloatType:
		return FamilyFloat
	case *schema.DecimalType:
		return FamilyDecimal
	case *schema.BoolType:
		return FamilyBoolean
	case *schema.StringType:
		return FamilyString
	case *schema.TimeType:
		return FamilyDateTime
	case *schema.JSONType:
		return FamilyJSON
	case *schema.BinaryType:
		return FamilyBytes
	case *schema.EnumType:
		return FamilyEnum
	case *schema.UUIDType:
		return FamilyUUID
	default:
		return FamilyUnsupported
	}
}

func defaultFromAtlas(x schema.Expr) *Default {
	switch x := x.(type) {
	case nil:
		return nil
	case *schema.Literal:
		return &Default{Kind: DefaultValue, Value: unquote(x.V)}
	case *schema.RawExpr:
		expr := strings.TrimSpace(x.X)
		switch {
		case strings.Contains(strings.ToLower(expr), "nextval("):
			return &Default{Kind: DefaultSequence, Value: expr}
		case isNowExpr(expr):
			return &Default{Kind: DefaultNow, Value: expr}
		default:
			return &Default{Kind: DefaultDbGenerated, Value: expr}
		}
	default:
		return nil
	}
}

// isNowExpr matches the current-timestamp spellings of the supported
// dialects.
func isNowExpr(expr string) bool {
	expr = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(expr), "()"))
	switch expr {
	case "now", "current_timestamp", "getdate", "sysdatetime", "sysdatetimeoffset", "getutcdate":
		return true
	}
	return strings.HasPrefix(expr, "current_timestamp(")
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		return strings.ReplaceAll(v[1:len(v)-1], "''", "'")
	}
	return v
}
