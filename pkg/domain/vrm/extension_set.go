// 指示: miu200521358
// Package vrm は1つのglTF文書に含まれるVRM関連拡張をまとめて扱う。
package vrm

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/springbone"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// VrmVersion はVRMのバージョンを表す。
type VrmVersion string

const (
	// VRM_VERSION_0 はVRM 0.0を表す。
	VRM_VERSION_0 VrmVersion = "0.0"
	// VRM_VERSION_1 はVRM 1.0を表す。
	VRM_VERSION_1 VrmVersion = "1.0"
)

// VrmProfile は作成元に基づくプロファイルを表す。
type VrmProfile string

const (
	// VRM_PROFILE_STANDARD は標準プロファイル。
	VRM_PROFILE_STANDARD VrmProfile = "standard"
	// VRM_PROFILE_VROID はVRoid Studio出力のプロファイル。
	VRM_PROFILE_VROID VrmProfile = "vroid"
)

// ExtensionSet は文書から見つかったVRM関連拡張の型付き値を保持する。
// 見つからなかった拡張はnilのまま。
type ExtensionSet struct {
	Vrm0       *vrm0.Schema
	Vrm1       *vrm1.Schema
	SpringBone *springbone.Schema
	// Mtoon はマテリアル番号ごとのMToon拡張。
	Mtoon          map[int]*mtoon.Schema
	AssetGenerator string
	ExtensionsUsed []string
}

// NewExtensionSet は空のExtensionSetを生成する。
func NewExtensionSet() *ExtensionSet {
	return &ExtensionSet{Mtoon: map[int]*mtoon.Schema{}}
}

// DecodeExtensionSet はルートのextensionsとマテリアルごとのMToon拡張から型付きの値を読み込む。
// いずれかの拡張が構造的に不正な場合は、その拡張名を含む構造デコードエラーを返す。
func DecodeExtensionSet(
	rootExtensions map[string]json.RawMessage,
	materialExtensions map[int]json.RawMessage,
) (*ExtensionSet, error) {
	set := NewExtensionSet()
	if raw, ok := rootExtensions[vrm0.ExtensionName]; ok {
		schema, err := vrm0.Decode(raw)
		if err != nil {
			return nil, err
		}
		set.Vrm0 = schema
	}
	if raw, ok := rootExtensions[vrm1.ExtensionName]; ok {
		schema, err := vrm1.Decode(raw)
		if err != nil {
			return nil, err
		}
		set.Vrm1 = schema
	}
	if raw, ok := rootExtensions[springbone.ExtensionName]; ok {
		schema, err := springbone.Decode(raw)
		if err != nil {
			return nil, err
		}
		set.SpringBone = schema
	}
	for index, raw := range materialExtensions {
		schema, err := mtoon.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", index, err)
		}
		set.Mtoon[index] = schema
	}
	return set, nil
}

// Version は優先するVRMバージョンを返す。両方ある場合はVRM 1.0を優先する。
func (s *ExtensionSet) Version() VrmVersion {
	if s == nil {
		return ""
	}
	if s.Vrm1 != nil || containsIgnoreCase(s.ExtensionsUsed, vrm1.ExtensionName) {
		return VRM_VERSION_1
	}
	if s.Vrm0 != nil || containsIgnoreCase(s.ExtensionsUsed, vrm0.ExtensionName) {
		return VRM_VERSION_0
	}
	return ""
}

// Profile は作成元情報からプロファイルを判定する。
func (s *ExtensionSet) Profile() VrmProfile {
	if s == nil {
		return VRM_PROFILE_STANDARD
	}
	exporterVersion := ""
	if s.Vrm0 != nil && s.Vrm0.ExporterVersion != nil {
		exporterVersion = *s.Vrm0.ExporterVersion
	}
	generatorLower := strings.ToLower(s.AssetGenerator)
	exporterLower := strings.ToLower(exporterVersion)
	if strings.Contains(generatorLower, "vroid") || strings.Contains(exporterLower, "vroid") {
		return VRM_PROFILE_VROID
	}
	return VRM_PROFILE_STANDARD
}

// Names は読み込まれた拡張名の一覧を返す。
func (s *ExtensionSet) Names() []string {
	if s == nil {
		return nil
	}
	var names []string
	if s.Vrm0 != nil {
		names = append(names, vrm0.ExtensionName)
	}
	if s.Vrm1 != nil {
		names = append(names, vrm1.ExtensionName)
	}
	if s.SpringBone != nil {
		names = append(names, springbone.ExtensionName)
	}
	if len(s.Mtoon) > 0 {
		names = append(names, mtoon.ExtensionName)
	}
	slices.Sort(names)
	return names
}

// MtoonMaterialIndexes はMToon拡張を持つマテリアル番号を昇順で返す。
func (s *ExtensionSet) MtoonMaterialIndexes() []int {
	if s == nil {
		return nil
	}
	indexes := make([]int, 0, len(s.Mtoon))
	for index := range s.Mtoon {
		indexes = append(indexes, index)
	}
	slices.Sort(indexes)
	return indexes
}

// RootExtensions はルートに埋め込む拡張をエンコード済みのJSONで返す。
func (s *ExtensionSet) RootExtensions() map[string]json.RawMessage {
	result := map[string]json.RawMessage{}
	if s == nil {
		return result
	}
	if s.Vrm0 != nil {
		result[vrm0.ExtensionName] = vrm0.Encode(s.Vrm0)
	}
	if s.Vrm1 != nil {
		result[vrm1.ExtensionName] = vrm1.Encode(s.Vrm1)
	}
	if s.SpringBone != nil {
		result[springbone.ExtensionName] = springbone.Encode(s.SpringBone)
	}
	return result
}

// Warnings は拡張をまたいで意味的な問題を列挙する。
func (s *ExtensionSet) Warnings() []model.VrmWarning {
	if s == nil {
		return nil
	}
	var warnings []model.VrmWarning
	switch s.Version() {
	case VRM_VERSION_1:
		if s.Vrm1 != nil {
			for _, name := range s.Vrm1.Humanoid.MissingRequiredBones() {
				warnings = append(warnings, model.NewVrmWarning(
					model.VrmWarningRequiredBoneMissing, "VRMC_vrm.humanoid.humanBones."+string(name),
					"必須ボーンにnodeが割り当てられていません"))
			}
		}
	case VRM_VERSION_0:
		if s.Vrm0 != nil {
			for _, bone := range s.Vrm0.Humanoid.MissingRequiredBones() {
				warnings = append(warnings, model.NewVrmWarning(
					model.VrmWarningRequiredBoneMissing, "VRM.humanoid.humanBones."+string(bone),
					"必須ボーンにnodeが割り当てられていません"))
			}
		}
	}
	if s.Vrm0 != nil && s.Vrm0.BlendShapeMaster != nil {
		for i, group := range s.Vrm0.BlendShapeMaster.BlendShapeGroups {
			if group.PresetName != nil && *group.PresetName == vrm0.PresetNameUnknown {
				name := ""
				if group.Name != nil {
					name = *group.Name
				}
				warnings = append(warnings, model.NewVrmWarning(
					model.VrmWarningLegacyPresetUnknown,
					fmt.Sprintf("VRM.blendShapeMaster.blendShapeGroups[%d].presetName", i),
					"定義済みでない表情です: %s", name))
			}
		}
	}
	for _, warning := range s.SpringBone.Warnings() {
		warning.Path = springbone.ExtensionName + "." + warning.Path
		warnings = append(warnings, warning)
	}
	return warnings
}

// Clone は深いコピーを返す。
func (s *ExtensionSet) Clone() *ExtensionSet {
	return vrmcommon.Clone(s)
}

// containsIgnoreCase は大文字小文字を無視して要素を検索する。
func containsIgnoreCase(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
