package dialect

// A Feature is a named capability flag supplied by the connector layer.
// Features gate behavior that is not yet (or not everywhere) enabled by
// default, such as explicit constraint names.
type Feature struct {
	// Name is the stable identifier of the feature.
	Name string
	// Stage indicates the maturity of the feature.
	Stage Stage
	// Default indicates whether the feature is enabled when the caller
	// passes no explicit feature set.
	Default bool
	// Description is a short human-readable summary.
	Description string
}

// Stage describes the maturity of a feature.
type Stage int

// Feature stages.
const (
	Experimental Stage = iota
	Alpha
	Beta
	Stable
)

// String returns the textual name of the stage.
func (s Stage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

var (
	// FeatureNamedConstraints enables explicit, recoverable names for
	// indexes, primary keys and default constraints. When disabled,
	// constraint names are neither recovered during reconciliation nor
	// compared during default-value equivalence checks.
	FeatureNamedConstraints = Feature{
		Name:        "namedconstraints",
		Stage:       Beta,
		Default:     false,
		Description: "Explicit names for indexes, primary keys and default constraints",
	}
)

// FeatureSet is the set of features active for one reconciliation or
// diffing run.
type FeatureSet []Feature

// Has reports whether the set contains the given feature, matched by name.
func (s FeatureSet) Has(f Feature) bool {
	for i := range s {
		if s[i].Name == f.Name {
			return true
		}
	}
	return false
}

// FeatureByName returns the known feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range []Feature{FeatureNamedConstraints} {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
