// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
)

// legacyPresetRules はVRM 0.0の表情名からVRM 1.0の表情名への対応を保持する。
var legacyPresetRules = map[vrm0.PresetName]vrm1.ExpressionPresetName{
	vrm0.PresetNameJoy:       vrm1.ExpressionPresetNameHappy,
	vrm0.PresetNameAngry:     vrm1.ExpressionPresetNameAngry,
	vrm0.PresetNameSorrow:    vrm1.ExpressionPresetNameSad,
	vrm0.PresetNameFun:       vrm1.ExpressionPresetNameRelaxed,
	vrm0.PresetNameNeutral:   vrm1.ExpressionPresetNameNeutral,
	vrm0.PresetNameA:         vrm1.ExpressionPresetNameAa,
	vrm0.PresetNameI:         vrm1.ExpressionPresetNameIh,
	vrm0.PresetNameU:         vrm1.ExpressionPresetNameOu,
	vrm0.PresetNameE:         vrm1.ExpressionPresetNameEe,
	vrm0.PresetNameO:         vrm1.ExpressionPresetNameOh,
	vrm0.PresetNameBlink:     vrm1.ExpressionPresetNameBlink,
	vrm0.PresetNameBlinkL:    vrm1.ExpressionPresetNameBlinkLeft,
	vrm0.PresetNameBlinkR:    vrm1.ExpressionPresetNameBlinkRight,
	vrm0.PresetNameLookup:    vrm1.ExpressionPresetNameLookUp,
	vrm0.PresetNameLookdown:  vrm1.ExpressionPresetNameLookDown,
	vrm0.PresetNameLookleft:  vrm1.ExpressionPresetNameLookLeft,
	vrm0.PresetNameLookright: vrm1.ExpressionPresetNameLookRight,
}

// MapLegacyPreset はVRM 0.0の表情名をVRM 1.0の表情名へ変換する。unknownは対応なし。
func MapLegacyPreset(preset vrm0.PresetName) (vrm1.ExpressionPresetName, bool) {
	name, ok := legacyPresetRules[preset]
	return name, ok
}

// ExpressionEntry は表情1つ分の名前と由来を表す。
type ExpressionEntry struct {
	// Name は定義済み表情ならVRM 1.0の表情名、それ以外は独自名。
	Name   string
	Preset bool
	Binary bool
	// MorphBindCount はモーフターゲットへの割り当て数。
	MorphBindCount int
}

// UnifiedExpressions はVRMバージョンによらず表情の一覧を返す。
// VRM 1.0の定義があればそれを、なければVRM 0.0のBlendShapeGroupを変換して返す。
func UnifiedExpressions(set *vrm.ExtensionSet) []ExpressionEntry {
	if set == nil {
		return nil
	}
	if set.Vrm1 != nil && set.Vrm1.Expressions != nil {
		return vrm1ExpressionEntries(set.Vrm1.Expressions)
	}
	if set.Vrm0 == nil || set.Vrm0.BlendShapeMaster == nil {
		return nil
	}

	var entries []ExpressionEntry
	for _, group := range set.Vrm0.BlendShapeMaster.BlendShapeGroups {
		entry := ExpressionEntry{
			Binary:         group.IsBinary != nil && *group.IsBinary,
			MorphBindCount: len(group.Binds),
		}
		if group.PresetName != nil {
			if name, ok := MapLegacyPreset(*group.PresetName); ok {
				entry.Name = string(name)
				entry.Preset = true
			}
		}
		if !entry.Preset && group.Name != nil {
			entry.Name = *group.Name
		}
		entries = append(entries, entry)
	}
	return entries
}

func vrm1ExpressionEntries(expressions *vrm1.Expressions) []ExpressionEntry {
	var entries []ExpressionEntry
	for _, name := range expressions.PresetNames() {
		expression := expressions.Preset[name]
		entries = append(entries, ExpressionEntry{
			Name:           string(name),
			Preset:         true,
			Binary:         expression.IsBinary != nil && *expression.IsBinary,
			MorphBindCount: len(expression.MorphTargetBinds),
		})
	}
	for _, name := range expressions.CustomNames() {
		expression := expressions.Custom[name]
		entries = append(entries, ExpressionEntry{
			Name:           name,
			Binary:         expression.IsBinary != nil && *expression.IsBinary,
			MorphBindCount: len(expression.MorphTargetBinds),
		})
	}
	return entries
}
