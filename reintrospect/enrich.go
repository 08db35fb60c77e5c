package reintrospect

import (
	"sort"

	"github.com/syssam/schemasync/datamodel"
)

// Enrich reconciles a freshly derived tree against the previously authored
// one. It mutates next in place and returns one warning per non-empty
// recovery category. prev is read-only.
//
// Matching is always by resolved database name, first candidate wins under
// declaration order, and a recovered logical name is only adopted when no
// other entity in the next tree already carries it. A missed match is a
// normal outcome, never an error.
func Enrich(prev, next *datamodel.Datamodel, ctx *Context) []Warning {
	var warnings []Warning

	// Phase 1: model identity. A new model whose resolved database name
	// matches an old model adopts the old logical name, pins the explicit
	// mapping it implicitly relied on, and every relation descriptor
	// targeting it is rewritten.
	type rename struct {
		from, to string
	}
	var changedModelNames []rename
	for _, model := range next.Models {
		oldModel := prev.FindModelByDBName(model.DBName())
		if oldModel == nil {
			continue
		}
		if next.FindModel(oldModel.Name) != nil {
			continue
		}
		changedModelNames = append(changedModelNames, rename{from: model.Name, to: oldModel.Name})
	}
	for _, r := range changedModelNames {
		model := next.FindModel(r.from)
		if model == nil {
			continue
		}
		model.Name = r.to
		if model.DatabaseName == "" {
			model.DatabaseName = r.from
		}
	}
	for _, r := range changedModelNames {
		for _, rf := range next.RelationFieldsTo(r.from) {
			rf.Info.To = r.to
		}
	}

	// Phase 2: custom constraint names, only with named constraints on.
	type indexRename struct {
		model, indexDBName, name string
	}
	type pkRename struct {
		model, name string
	}
	var changedIndexNames []indexRename
	var changedPrimaryKeyNames []pkRename
	if ctx.HasNamedConstraints() {
		for _, model := range next.Models {
			oldModel := prev.FindModel(model.Name)
			if oldModel == nil {
				continue
			}
			for _, index := range model.Indexes {
				if index.Name != "" {
					continue
				}
				oldIndex := oldModel.FindIndexByDBName(index.DatabaseName)
				if oldIndex != nil && oldIndex.Name != "" {
					changedIndexNames = append(changedIndexNames, indexRename{
						model:       model.Name,
						indexDBName: oldIndex.DatabaseName,
						name:        oldIndex.Name,
					})
				}
			}
		}
		for _, r := range changedIndexNames {
			model := next.FindModel(r.model)
			if model == nil {
				continue
			}
			if index := model.FindIndexByDBName(r.indexDBName); index != nil {
				index.Name = r.name
			}
		}

		for _, model := range next.Models {
			oldModel := prev.FindModel(model.Name)
			if oldModel == nil || model.PrimaryKey == nil || oldModel.PrimaryKey == nil {
				continue
			}
			pk, oldPK := model.PrimaryKey, oldModel.PrimaryKey
			if pk.Name == "" && stringsEqual(oldPK.Fields, pk.Fields) &&
				(oldPK.DatabaseName == pk.DatabaseName || pk.DatabaseName == "") &&
				oldPK.Name != "" {
				changedPrimaryKeyNames = append(changedPrimaryKeyNames, pkRename{model: model.Name, name: oldPK.Name})
			}
		}
		for _, r := range changedPrimaryKeyNames {
			if model := next.FindModel(r.model); model != nil && model.PrimaryKey != nil {
				model.PrimaryKey.Name = r.name
			}
		}
	}

	// Phase 3: scalar field identity within matched models. A recovered
	// field name is rewritten everywhere it can occur: the primary key,
	// index field lists, owning-field lists, and the referenced-field
	// lists of relations held by other models.
	type fieldRename struct {
		model, from, to string
	}
	var changedFieldNames []fieldRename
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		for _, field := range model.Fields {
			oldField := oldModel.FindFieldByDBName(field.DBName())
			if oldField == nil {
				continue
			}
			if model.FindField(oldField.Name) != nil {
				continue
			}
			changedFieldNames = append(changedFieldNames, fieldRename{model: model.Name, from: field.Name, to: oldField.Name})
		}
	}
	for _, r := range changedFieldNames {
		model := next.FindModel(r.model)
		if model == nil {
			continue
		}
		field := model.FindField(r.from)
		if field == nil {
			continue
		}
		field.Name = r.to
		if field.DatabaseName == "" {
			field.DatabaseName = r.from
		}
	}
	for _, r := range changedFieldNames {
		model := next.FindModel(r.model)
		if model == nil {
			continue
		}
		if model.PrimaryKey != nil {
			datamodel.ReplaceFieldName(model.PrimaryKey.Fields, r.from, r.to)
		}
		for _, index := range model.Indexes {
			datamodel.ReplaceFieldName(index.Fields, r.from, r.to)
		}
		for _, rf := range model.Relations {
			datamodel.ReplaceFieldName(rf.Info.Fields, r.from, r.to)
		}
	}
	for _, r := range changedFieldNames {
		for _, rf := range next.RelationFieldsTo(r.model) {
			datamodel.ReplaceFieldName(rf.Info.References, r.from, r.to)
		}
	}

	// Phase 4: relation field display names. Both endpoints' descriptors
	// must match; the descriptor of the non-owning side alone does not
	// identify the relation. Many-to-many additionally requires equal
	// relation names since the name maps to the join table, and self
	// many-to-many can never be disambiguated.
	type relationFieldRename struct {
		field *datamodel.RelationField
		name  string
	}
	var changedRelationFieldNames []relationFieldRename
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		for _, field := range model.Relations {
			_, related := next.RelatedField(field)
			if related == nil {
				continue
			}
			for _, oldField := range oldModel.Relations {
				_, oldRelated := prev.RelatedField(oldField)
				if oldRelated == nil {
					continue
				}
				manyToMany := oldField.IsList && oldRelated.IsList
				selfRelation := oldField.Info.To == oldRelated.Info.To

				if !oldField.Info.EqualIgnoringName(field.Info) || !oldRelated.Info.EqualIgnoringName(related.Info) {
					continue
				}
				if manyToMany && (oldField.Info.Name != field.Info.Name || selfRelation) {
					continue
				}
				changedRelationFieldNames = append(changedRelationFieldNames, relationFieldRename{field: field, name: oldField.Name})
			}
		}
	}
	for _, r := range changedRelationFieldNames {
		r.field.Name = r.name
	}

	// Phase 5: relation names on non-many-to-many relations, propagated to
	// both endpoints. Many-to-many names map to join tables and changing
	// them would require a database change.
	type relationRename struct {
		field *datamodel.RelationField
		name  string
	}
	var changedRelationNames []relationRename
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		for _, field := range model.Relations {
			_, related := next.RelatedField(field)
			if related == nil {
				continue
			}
			for _, oldField := range oldModel.Relations {
				_, oldRelated := prev.RelatedField(oldField)
				if oldRelated == nil {
					continue
				}
				if oldField.IsList && oldRelated.IsList {
					continue
				}
				if oldField.Info.EqualIgnoringName(field.Info) && oldRelated.Info.EqualIgnoringName(related.Info) {
					changedRelationNames = append(changedRelationNames,
						relationRename{field: field, name: oldField.Info.Name},
						relationRename{field: related, name: oldField.Info.Name})
				}
			}
		}
	}
	for _, r := range changedRelationNames {
		r.field.Info.Name = r.name
	}

	// Phase 6: enum identity and enum values, analogous to phases 1 and 3.
	var changedEnumNames []rename
	for _, enum := range next.Enums {
		oldEnum := prev.FindEnumByDBName(enum.DBName())
		if oldEnum == nil {
			continue
		}
		if next.FindEnum(oldEnum.Name) != nil {
			continue
		}
		changedEnumNames = append(changedEnumNames, rename{from: enum.Name, to: oldEnum.Name})
	}
	for _, r := range changedEnumNames {
		enum := next.FindEnum(r.from)
		if enum == nil {
			continue
		}
		enum.Name = r.to
		if enum.DatabaseName == "" {
			enum.DatabaseName = r.from
		}
	}
	for _, r := range changedEnumNames {
		for _, ref := range next.EnumFields(r.from) {
			ref.Field.Type = datamodel.EnumType(r.to)
		}
	}

	type enumValueRename struct {
		enum, from, to string
	}
	var changedEnumValues []enumValueRename
	for _, enum := range next.Enums {
		oldEnum := prev.FindEnum(enum.Name)
		if oldEnum == nil {
			continue
		}
		for _, value := range enum.Values {
			oldValue := oldEnum.FindValueByDBName(value.DBName())
			if oldValue == nil {
				continue
			}
			if enum.FindValue(oldValue.Name) != nil {
				continue
			}
			changedEnumValues = append(changedEnumValues, enumValueRename{enum: enum.Name, from: value.Name, to: oldValue.Name})
		}
	}
	for _, r := range changedEnumValues {
		enum := next.FindEnum(r.enum)
		if enum == nil {
			continue
		}
		value := enum.FindValue(r.from)
		if value == nil {
			continue
		}
		value.Name = r.to
		if value.DatabaseName == "" {
			value.DatabaseName = r.from
		}
	}
	for _, r := range changedEnumValues {
		for _, ref := range next.EnumFields(r.enum) {
			if ref.Field.Default.IsEnumValue(r.from) {
				ref.Field.Default = datamodel.NewEnumDefault(r.to)
			}
		}
	}

	// Phase 7: enum identity on MySQL-family dialects, where enums have no
	// schema-level identity and are located through the first field using
	// them. First match wins, a claimed old name is never reused.
	type inferredEnumRename struct {
		from, to string
		ref      datamodel.FieldRef
	}
	var changedInferredEnumNames []inferredEnumRename
	if ctx.Dialect.IsMySQLFamily() {
		for _, enum := range next.Enums {
			refs := next.EnumFields(enum.Name)
			if len(refs) == 0 {
				continue
			}
			first := refs[0]
			oldModel := prev.FindModel(first.Model.Name)
			if oldModel == nil {
				continue
			}
			oldField := oldModel.FindField(first.Field.Name)
			if oldField == nil || oldField.Type.Kind != datamodel.KindEnum {
				continue
			}
			oldEnum := prev.FindEnum(oldField.Type.Enum)
			if oldEnum == nil {
				continue
			}
			claimed := false
			for _, c := range changedInferredEnumNames {
				if c.to == oldEnum.Name {
					claimed = true
					break
				}
			}
			if enum.SameValues(oldEnum) && oldEnum.Name != enum.Name && !claimed {
				changedInferredEnumNames = append(changedInferredEnumNames, inferredEnumRename{from: enum.Name, to: oldEnum.Name, ref: first})
			}
		}
		for _, r := range changedInferredEnumNames {
			if enum := next.FindEnum(r.from); enum != nil {
				enum.Name = r.to
			}
			r.ref.Field.Type = datamodel.EnumType(r.to)
		}
	}

	// Phase 8: semantics with no physical representation. Client-side id
	// generators and the auto-update timestamp flag only exist in the
	// authored schema and must be carried forward explicitly.
	var recoveredGenerators []AffectedFieldDefault
	var recoveredUpdatedAt []AffectedModelAndField
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		for _, field := range model.Fields {
			oldField := oldModel.FindField(field.Name)
			if oldField == nil {
				continue
			}
			if field.Default == nil && field.Type.IsString() {
				for _, g := range []datamodel.ValueGenerator{datamodel.GeneratorCUID, datamodel.GeneratorUUID} {
					if oldField.Default.IsGenerator(g) {
						recoveredGenerators = append(recoveredGenerators, AffectedFieldDefault{
							Model:     model.Name,
							Field:     field.Name,
							Generator: string(g),
						})
					}
				}
			}
			if field.Type.IsDateTime() && oldField.UpdatedAt && !field.UpdatedAt {
				recoveredUpdatedAt = append(recoveredUpdatedAt, AffectedModelAndField{Model: model.Name, Field: field.Name})
			}
		}
	}
	for _, r := range recoveredGenerators {
		if model := next.FindModel(r.Model); model != nil {
			if field := model.FindField(r.Field); field != nil {
				field.Default = datamodel.NewGenerated(datamodel.ValueGenerator(r.Generator))
			}
		}
	}
	for _, r := range recoveredUpdatedAt {
		if model := next.FindModel(r.Model); model != nil {
			if field := model.FindField(r.Field); field != nil {
				field.UpdatedAt = true
			}
		}
	}

	// Phase 9: ignore flags are sticky; once a user ignores a model or
	// field it stays ignored across re-derivations.
	var ignoredModels []AffectedModel
	var ignoredFields []AffectedModelAndField
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		if oldModel.Ignored && !model.Ignored {
			ignoredModels = append(ignoredModels, AffectedModel{Model: model.Name})
		}
		for _, field := range model.Fields {
			if oldField := oldModel.FindField(field.Name); oldField != nil && oldField.Ignored && !field.Ignored {
				ignoredFields = append(ignoredFields, AffectedModelAndField{Model: model.Name, Field: field.Name})
			}
		}
	}
	for _, r := range ignoredModels {
		if model := next.FindModel(r.Model); model != nil {
			model.Ignored = true
		}
	}
	for _, r := range ignoredFields {
		if model := next.FindModel(r.Model); model != nil {
			if field := model.FindField(r.Field); field != nil {
				field.Ignored = true
			}
		}
	}

	// Phase 10: documentation carry-forward. Silent.
	copyDocumentation(prev, next)

	// Phase 11: restore the old declaration order of models and enums.
	// Entities the old tree does not know sort last, keeping their
	// relative order.
	modelPos := oldModelPositions(prev)
	sort.SliceStable(next.Models, byOldPosition(modelPos, func(i int) string { return next.Models[i].Name }))
	enumPos := oldEnumPositions(prev)
	sort.SliceStable(next.Enums, byOldPosition(enumPos, func(i int) string { return next.Enums[i].Name }))

	// Phase 12: one warning per non-empty recovery bucket, in phase order.
	if len(changedModelNames) > 0 {
		affected := make([]AffectedModel, len(changedModelNames))
		for i, r := range changedModelNames {
			affected[i] = AffectedModel{Model: r.to}
		}
		warnings = append(warnings, warnModelsRenamed(affected))
	}
	if len(changedIndexNames) > 0 {
		affected := make([]AffectedModelAndIndex, len(changedIndexNames))
		for i, r := range changedIndexNames {
			affected[i] = AffectedModelAndIndex{Model: r.model, IndexDBName: r.indexDBName}
		}
		warnings = append(warnings, warnIndexNamesRecovered(affected))
	}
	if len(changedPrimaryKeyNames) > 0 {
		affected := make([]AffectedModel, len(changedPrimaryKeyNames))
		for i, r := range changedPrimaryKeyNames {
			affected[i] = AffectedModel{Model: r.model}
		}
		warnings = append(warnings, warnPrimaryKeyNamesRecovered(affected))
	}
	if len(changedFieldNames) > 0 {
		affected := make([]AffectedModelAndField, len(changedFieldNames))
		for i, r := range changedFieldNames {
			affected[i] = AffectedModelAndField{Model: r.model, Field: r.to}
		}
		warnings = append(warnings, warnFieldsRenamed(affected))
	}
	if len(changedEnumNames) > 0 || len(changedInferredEnumNames) > 0 {
		var affected []AffectedEnum
		for _, r := range changedEnumNames {
			affected = append(affected, AffectedEnum{Enum: r.to})
		}
		for _, r := range changedInferredEnumNames {
			affected = append(affected, AffectedEnum{Enum: r.to})
		}
		warnings = append(warnings, warnEnumsRenamed(affected))
	}
	if len(changedEnumValues) > 0 {
		affected := make([]AffectedEnumAndValue, len(changedEnumValues))
		for i, r := range changedEnumValues {
			affected[i] = AffectedEnumAndValue{Enum: r.enum, Value: r.to}
		}
		warnings = append(warnings, warnEnumValuesRenamed(affected))
	}
	if len(recoveredGenerators) > 0 {
		warnings = append(warnings, warnIDGeneratorsRecovered(recoveredGenerators))
	}
	if len(recoveredUpdatedAt) > 0 {
		warnings = append(warnings, warnUpdatedAtRecovered(recoveredUpdatedAt))
	}
	if len(ignoredModels) > 0 {
		warnings = append(warnings, warnModelsIgnored(ignoredModels))
	}
	if len(ignoredFields) > 0 {
		warnings = append(warnings, warnFieldsIgnored(ignoredFields))
	}

	return warnings
}

func copyDocumentation(prev, next *datamodel.Datamodel) {
	for _, model := range next.Models {
		oldModel := prev.FindModel(model.Name)
		if oldModel == nil {
			continue
		}
		if oldModel.Documentation != "" {
			model.Documentation = oldModel.Documentation
		}
		for _, field := range model.Fields {
			if oldField := oldModel.FindField(field.Name); oldField != nil && oldField.Documentation != "" {
				field.Documentation = oldField.Documentation
			}
		}
		for _, rf := range model.Relations {
			if oldRF := oldModel.FindRelation(rf.Name); oldRF != nil && oldRF.Documentation != "" {
				rf.Documentation = oldRF.Documentation
			}
		}
	}
	for _, enum := range next.Enums {
		oldEnum := prev.FindEnum(enum.Name)
		if oldEnum == nil {
			continue
		}
		if oldEnum.Documentation != "" {
			enum.Documentation = oldEnum.Documentation
		}
		for _, value := range enum.Values {
			if oldValue := oldEnum.FindValue(value.Name); oldValue != nil && oldValue.Documentation != "" {
				value.Documentation = oldValue.Documentation
			}
		}
	}
}

func oldModelPositions(prev *datamodel.Datamodel) map[string]int {
	pos := make(map[string]int, len(prev.Models))
	for i, m := range prev.Models {
		if _, ok := pos[m.Name]; !ok {
			pos[m.Name] = i
		}
	}
	return pos
}

func oldEnumPositions(prev *datamodel.Datamodel) map[string]int {
	pos := make(map[string]int, len(prev.Enums))
	for i, e := range prev.Enums {
		if _, ok := pos[e.Name]; !ok {
			pos[e.Name] = i
		}
	}
	return pos
}

// byOldPosition orders a collection by the old tree's positional index.
// Unmatched entities compare greater than matched ones and equal to each
// other, which the stable sort turns into "appended last, relative order
// preserved".
func byOldPosition(pos map[string]int, name func(i int) string) func(i, j int) bool {
	return func(i, j int) bool {
		pi, oki := pos[name(i)]
		pj, okj := pos[name(j)]
		switch {
		case oki && okj:
			return pi < pj
		case oki:
			return true
		default:
			return false
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
