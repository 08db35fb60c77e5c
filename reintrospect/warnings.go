package reintrospect

import (
	"fmt"

	"github.com/go-openapi/inflect"
)

// Warning codes, one per recovery category. Documentation carry-forward is
// silent and has no code.
const (
	CodeModelRenamed = iota + 1
	CodeFieldRenamed
	CodeEnumRenamed
	CodeEnumValueRenamed
	CodeIndexNameRecovered
	CodePrimaryKeyNameRecovered
	CodeIDGeneratorRecovered
	CodeUpdatedAtRecovered
	CodeModelIgnored
	CodeFieldIgnored
)

// Warning reports one category of recovery performed by Enrich. Warnings
// are advisory; they tell the user which parts of the re-derived schema
// were rewritten from the previous one.
type Warning struct {
	// Code identifies the recovery category.
	Code int `json:"code"`
	// Message is a human-readable summary.
	Message string `json:"message"`
	// Affected lists the entities the recovery applied to, in the order
	// they were recovered.
	Affected any `json:"affected"`
}

// AffectedModel identifies a model.
type AffectedModel struct {
	Model string `json:"model"`
}

// AffectedModelAndField identifies a field within a model.
type AffectedModelAndField struct {
	Model string `json:"model"`
	Field string `json:"field"`
}

// AffectedModelAndIndex identifies an index within a model by its database
// name.
type AffectedModelAndIndex struct {
	Model       string `json:"model"`
	IndexDBName string `json:"index_db_name"`
}

// AffectedEnum identifies an enum.
type AffectedEnum struct {
	Enum string `json:"enum"`
}

// AffectedEnumAndValue identifies a value within an enum.
type AffectedEnumAndValue struct {
	Enum  string `json:"enum"`
	Value string `json:"value"`
}

// AffectedFieldDefault identifies a field whose client-side default was
// recovered, together with the generator it uses.
type AffectedFieldDefault struct {
	Model     string `json:"model"`
	Field     string `json:"field"`
	Generator string `json:"generator"`
}

// counted renders "1 model" / "3 models" for warning messages.
func counted(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %s", n, inflect.Pluralize(noun))
}

func warnModelsRenamed(affected []AffectedModel) Warning {
	return Warning{
		Code:     CodeModelRenamed,
		Message:  fmt.Sprintf("recovered the previous names and name mappings of %s", counted(len(affected), "model")),
		Affected: affected,
	}
}

func warnFieldsRenamed(affected []AffectedModelAndField) Warning {
	return Warning{
		Code:     CodeFieldRenamed,
		Message:  fmt.Sprintf("recovered the previous names and name mappings of %s", counted(len(affected), "field")),
		Affected: affected,
	}
}

func warnEnumsRenamed(affected []AffectedEnum) Warning {
	return Warning{
		Code:     CodeEnumRenamed,
		Message:  fmt.Sprintf("recovered the previous names and name mappings of %s", counted(len(affected), "enum")),
		Affected: affected,
	}
}

func warnEnumValuesRenamed(affected []AffectedEnumAndValue) Warning {
	return Warning{
		Code:     CodeEnumValueRenamed,
		Message:  fmt.Sprintf("recovered the previous names and name mappings of %s", counted(len(affected), "enum value")),
		Affected: affected,
	}
}

func warnIndexNamesRecovered(affected []AffectedModelAndIndex) Warning {
	return Warning{
		Code:     CodeIndexNameRecovered,
		Message:  fmt.Sprintf("recovered the custom names of %s", counted(len(affected), "index")),
		Affected: affected,
	}
}

func warnPrimaryKeyNamesRecovered(affected []AffectedModel) Warning {
	return Warning{
		Code:     CodePrimaryKeyNameRecovered,
		Message:  fmt.Sprintf("recovered the custom names of %s", counted(len(affected), "primary key")),
		Affected: affected,
	}
}

func warnIDGeneratorsRecovered(affected []AffectedFieldDefault) Warning {
	return Warning{
		Code:     CodeIDGeneratorRecovered,
		Message:  fmt.Sprintf("recovered the client-side id generators of %s", counted(len(affected), "field")),
		Affected: affected,
	}
}

func warnUpdatedAtRecovered(affected []AffectedModelAndField) Warning {
	return Warning{
		Code:     CodeUpdatedAtRecovered,
		Message:  fmt.Sprintf("recovered the auto-update timestamp behavior of %s", counted(len(affected), "field")),
		Affected: affected,
	}
}

func warnModelsIgnored(affected []AffectedModel) Warning {
	return Warning{
		Code:     CodeModelIgnored,
		Message:  fmt.Sprintf("kept %s ignored", counted(len(affected), "model")),
		Affected: affected,
	}
}

func warnFieldsIgnored(affected []AffectedModelAndField) Warning {
	return Warning{
		Code:     CodeFieldIgnored,
		Message:  fmt.Sprintf("kept %s ignored", counted(len(affected), "field")),
		Affected: affected,
	}
}
