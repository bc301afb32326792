// 指示: miu200521358
// Package vrm1 はVRM 1.0の "VRMC_vrm" 拡張のデータ構造を提供する。
//
// humanoid、meta、specVersion は必須で、欠落やnullは構造デコードエラーになる。
// 列挙値は閉じた語彙のみを受け付け、未知の値はエラーとする。
package vrm1

import (
	"encoding/json"
	"fmt"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// ExtensionName はVRM 1.0拡張の名前。
const ExtensionName = "VRMC_vrm"

// Schema はVRMC_vrm拡張のルートを表す。
type Schema struct {
	Expressions *Expressions         `json:"expressions,omitempty"`
	Extensions  vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras      vrmcommon.Extras     `json:"extras,omitzero"`
	FirstPerson *FirstPerson         `json:"firstPerson,omitempty"`
	Humanoid    Humanoid             `json:"humanoid"`
	LookAt      *LookAt              `json:"lookAt,omitempty"`
	Meta        Meta                 `json:"meta"`
	SpecVersion string               `json:"specVersion"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (s *Schema) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, ExtensionName, "humanoid", "meta", "specVersion"); err != nil {
		return err
	}
	type schemaAlias Schema
	var alias schemaAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = Schema(alias)
	return nil
}

// Expressions は定義済み表情と独自表情を保持する。
// presetとcustomで同名の表情があっても重複排除は行わない。
type Expressions struct {
	Custom     map[string]Expression               `json:"custom,omitzero"`
	Extensions vrmcommon.Extensions                `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                    `json:"extras,omitzero"`
	Preset     map[ExpressionPresetName]Expression `json:"preset,omitzero"`
}

// Expression はモーフ、マテリアル色、テクスチャ変換を組み合わせた表情を表す。
type Expression struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// IsBinary が真の場合、0.5を超えるウェイトを1、それ以下を0として扱う。
	IsBinary              *bool                   `json:"isBinary,omitempty"`
	MaterialColorBinds    []MaterialColorBind     `json:"materialColorBinds,omitzero"`
	MorphTargetBinds      []MorphTargetBind       `json:"morphTargetBinds,omitzero"`
	OverrideBlink         *ExpressionOverrideType `json:"overrideBlink,omitempty"`
	OverrideLookAt        *ExpressionOverrideType `json:"overrideLookAt,omitempty"`
	OverrideMouth         *ExpressionOverrideType `json:"overrideMouth,omitempty"`
	TextureTransformBinds []TextureTransformBind  `json:"textureTransformBinds,omitzero"`
}

// MaterialColorBind はマテリアルの色プロパティの目標値を表す。
type MaterialColorBind struct {
	Extensions  vrmcommon.Extensions            `json:"extensions,omitzero"`
	Extras      vrmcommon.Extras                `json:"extras,omitzero"`
	Material    gltfref.Index[gltfref.Material] `json:"material"`
	TargetValue vrmcommon.Vector4               `json:"targetValue"`
	Type        MaterialColorType               `json:"type"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (b *MaterialColorBind) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "materialColorBind", "material", "type", "targetValue"); err != nil {
		return err
	}
	type bindAlias MaterialColorBind
	var alias bindAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*b = MaterialColorBind(alias)
	return nil
}

// MorphTargetBind はメッシュのモーフターゲットへの割り当てを表す。
type MorphTargetBind struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// Index はnodeが参照するメッシュ内のモーフターゲット番号。
	Index  int                         `json:"index"`
	Node   gltfref.Index[gltfref.Node] `json:"node"`
	Weight float64                     `json:"weight"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (b *MorphTargetBind) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "morphTargetBind", "node", "index", "weight"); err != nil {
		return err
	}
	type bindAlias MorphTargetBind
	var alias bindAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	if alias.Index < 0 {
		return fmt.Errorf("morphTargetBind.index に負値は指定できません: %d", alias.Index)
	}
	*b = MorphTargetBind(alias)
	return nil
}

// TextureTransformBind はテクスチャのオフセットとスケールの目標値を表す。
type TextureTransformBind struct {
	Extensions vrmcommon.Extensions            `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                `json:"extras,omitzero"`
	Material   gltfref.Index[gltfref.Material] `json:"material"`
	Offset     *vrmcommon.Vector2              `json:"offset,omitempty"`
	Scale      *vrmcommon.Vector2              `json:"scale,omitempty"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (b *TextureTransformBind) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "textureTransformBind", "material"); err != nil {
		return err
	}
	type bindAlias TextureTransformBind
	var alias bindAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*b = TextureTransformBind(alias)
	return nil
}

// FirstPerson は一人称視点でのメッシュ表示設定を表す。
type FirstPerson struct {
	Extensions      vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras          vrmcommon.Extras     `json:"extras,omitzero"`
	MeshAnnotations []MeshAnnotation     `json:"meshAnnotations,omitzero"`
}

// MeshAnnotation はメッシュを持つnodeとカメラ毎の表示種別の組を表す。
type MeshAnnotation struct {
	Extensions vrmcommon.Extensions                `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                    `json:"extras,omitzero"`
	Node       gltfref.OptionalIndex[gltfref.Node] `json:"node,omitzero"`
	Type       FirstPersonType                     `json:"type"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (a *MeshAnnotation) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "meshAnnotation", "type"); err != nil {
		return err
	}
	type annotationAlias MeshAnnotation
	var alias annotationAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = MeshAnnotation(alias)
	return nil
}

// Humanoid はヒューマノイドボーンとnodeの対応を表す。
type Humanoid struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// HumanBones に含まれないボーンはそのアバターで未定義として扱う。値がnullのエントリも保持する。
	HumanBones map[HumanBoneName]*HumanBone `json:"humanBones"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (h *Humanoid) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "humanoid", "humanBones"); err != nil {
		return err
	}
	type humanoidAlias Humanoid
	var alias humanoidAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*h = Humanoid(alias)
	return nil
}

// MarshalJSON はhumanBonesが未設定でも空のオブジェクトを出力する。
func (h Humanoid) MarshalJSON() ([]byte, error) {
	type humanoidAlias Humanoid
	alias := humanoidAlias(h)
	if alias.HumanBones == nil {
		alias.HumanBones = map[HumanBoneName]*HumanBone{}
	}
	return vrmcommon.Marshal(alias)
}

// HumanBone はボーンに割り当てられたnodeを表す。
type HumanBone struct {
	Extensions vrmcommon.Extensions                `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                    `json:"extras,omitzero"`
	Node       gltfref.OptionalIndex[gltfref.Node] `json:"node,omitzero"`
}

// LookAt は視線制御の設定を表す。
type LookAt struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// OffsetFromHeadBone はheadボーンから両目の間までのオフセット。
	OffsetFromHeadBone      *vrmcommon.Vector3 `json:"offsetFromHeadBone,omitempty"`
	RangeMapHorizontalInner *LookAtRangeMap    `json:"rangeMapHorizontalInner,omitempty"`
	RangeMapHorizontalOuter *LookAtRangeMap    `json:"rangeMapHorizontalOuter,omitempty"`
	RangeMapVerticalDown    *LookAtRangeMap    `json:"rangeMapVerticalDown,omitempty"`
	RangeMapVerticalUp      *LookAtRangeMap    `json:"rangeMapVerticalUp,omitempty"`
	Type                    *LookAtType        `json:"type,omitempty"`
}

// LookAtRangeMap は入力角度から出力値への線形対応を表す。
type LookAtRangeMap struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// InputMaxValue は入力角度の最大値(度)。
	InputMaxValue *float64 `json:"inputMaxValue,omitempty"`
	OutputScale   *float64 `json:"outputScale,omitempty"`
}

// Meta はモデル情報と利用許諾を表す。
type Meta struct {
	AllowAntisocialOrHateUsage     *bool                 `json:"allowAntisocialOrHateUsage,omitempty"`
	AllowExcessivelySexualUsage    *bool                 `json:"allowExcessivelySexualUsage,omitempty"`
	AllowExcessivelyViolentUsage   *bool                 `json:"allowExcessivelyViolentUsage,omitempty"`
	AllowPoliticalOrReligiousUsage *bool                 `json:"allowPoliticalOrReligiousUsage,omitempty"`
	AllowRedistribution            *bool                 `json:"allowRedistribution,omitempty"`
	Authors                        []string              `json:"authors"`
	AvatarPermission               *AvatarPermissionType `json:"avatarPermission,omitempty"`
	CommercialUsage                *CommercialUsageType  `json:"commercialUsage,omitempty"`
	ContactInformation             *string               `json:"contactInformation,omitempty"`
	CopyrightInformation           *string               `json:"copyrightInformation,omitempty"`
	CreditNotation                 *CreditNotationType   `json:"creditNotation,omitempty"`
	Extensions                     vrmcommon.Extensions  `json:"extensions,omitzero"`
	Extras                         vrmcommon.Extras      `json:"extras,omitzero"`
	LicenseURL                     string                `json:"licenseUrl"`
	Modification                   *ModificationType     `json:"modification,omitempty"`
	Name                           string                `json:"name"`
	OtherLicenseURL                *string               `json:"otherLicenseUrl,omitempty"`
	References                     []string              `json:"references,omitzero"`
	ThirdPartyLicenses             *string               `json:"thirdPartyLicenses,omitempty"`
	// ThumbnailImage はサムネイル画像。テクスチャではなくimagesを参照する。
	ThumbnailImage gltfref.OptionalIndex[gltfref.Image] `json:"thumbnailImage,omitzero"`
	Version        *string                              `json:"version,omitempty"`
}

// UnmarshalJSON は必須フィールドと作者の件数を検証してから読み込む。
func (m *Meta) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "meta", "name", "authors", "licenseUrl"); err != nil {
		return err
	}
	type metaAlias Meta
	var alias metaAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	if len(alias.Authors) == 0 {
		return fmt.Errorf("meta.authors には1人以上の作者が必要です")
	}
	*m = Meta(alias)
	return nil
}

// MarshalJSON はauthorsが未設定でも空の配列を出力する。
func (m Meta) MarshalJSON() ([]byte, error) {
	type metaAlias Meta
	alias := metaAlias(m)
	if alias.Authors == nil {
		alias.Authors = []string{}
	}
	return vrmcommon.Marshal(alias)
}

// Decode はVRMC_vrm拡張のJSONを読み込む。
func Decode(data []byte) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.Decode(ExtensionName, data, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// DecodeValue は汎用のJSON値からVRMC_vrm拡張を読み込む。
func DecodeValue(value any) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.DecodeValue(ExtensionName, value, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// Encode はVRMC_vrm拡張をJSONへ変換する。必須フィールドは常に出力する。
func Encode(schema *Schema) json.RawMessage {
	if schema == nil {
		return vrmcommon.Encode(&Schema{})
	}
	return vrmcommon.Encode(schema)
}

// Clone は深いコピーを返す。
func (s *Schema) Clone() *Schema {
	return vrmcommon.Clone(s)
}
