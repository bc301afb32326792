// 指示: miu200521358
// Package mtoon はマテリアル拡張 "VRMC_materials_mtoon" のデータ構造を提供する。
//
// specVersion のみ必須で、その他のパラメータは独立して任意。
package mtoon

import (
	"encoding/json"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// ExtensionName はMToonマテリアル拡張の名前。
const ExtensionName = "VRMC_materials_mtoon"

// Schema はglTFマテリアル1つ分のMToonパラメータを表す。
type Schema struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// GIEqualizationFactor は環境光の均一化の度合い。
	GIEqualizationFactor            *float64                 `json:"giEqualizationFactor,omitempty"`
	MatcapFactor                    *vrmcommon.Vector3       `json:"matcapFactor,omitempty"`
	MatcapTexture                   *TextureInfo             `json:"matcapTexture,omitempty"`
	OutlineColorFactor              *vrmcommon.Vector3       `json:"outlineColorFactor,omitempty"`
	OutlineLightingMixFactor        *float64                 `json:"outlineLightingMixFactor,omitempty"`
	OutlineWidthFactor              *float64                 `json:"outlineWidthFactor,omitempty"`
	OutlineWidthMode                *OutlineWidthMode        `json:"outlineWidthMode,omitempty"`
	OutlineWidthMultiplyTexture     *TextureInfo             `json:"outlineWidthMultiplyTexture,omitempty"`
	ParametricRimColorFactor        *vrmcommon.Vector3       `json:"parametricRimColorFactor,omitempty"`
	ParametricRimFresnelPowerFactor *float64                 `json:"parametricRimFresnelPowerFactor,omitempty"`
	ParametricRimLiftFactor         *float64                 `json:"parametricRimLiftFactor,omitempty"`
	RenderQueueOffsetNumber         *int                     `json:"renderQueueOffsetNumber,omitempty"`
	RimLightingMixFactor            *float64                 `json:"rimLightingMixFactor,omitempty"`
	RimMultiplyTexture              *TextureInfo             `json:"rimMultiplyTexture,omitempty"`
	ShadeColorFactor                *vrmcommon.Vector3       `json:"shadeColorFactor,omitempty"`
	ShadeMultiplyTexture            *TextureInfo             `json:"shadeMultiplyTexture,omitempty"`
	ShadingShiftFactor              *float64                 `json:"shadingShiftFactor,omitempty"`
	ShadingShiftTexture             *ShadingShiftTextureInfo `json:"shadingShiftTexture,omitempty"`
	ShadingToonyFactor              *float64                 `json:"shadingToonyFactor,omitempty"`
	SpecVersion                     string                   `json:"specVersion"`
	// TransparentWithZWrite が真の場合、半透明でも深度を書き込む。
	TransparentWithZWrite          *bool        `json:"transparentWithZWrite,omitempty"`
	UVAnimationMaskTexture         *TextureInfo `json:"uvAnimationMaskTexture,omitempty"`
	UVAnimationRotationSpeedFactor *float64     `json:"uvAnimationRotationSpeedFactor,omitempty"`
	UVAnimationScrollXSpeedFactor  *float64     `json:"uvAnimationScrollXSpeedFactor,omitempty"`
	UVAnimationScrollYSpeedFactor  *float64     `json:"uvAnimationScrollYSpeedFactor,omitempty"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (s *Schema) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, ExtensionName, "specVersion"); err != nil {
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

// TextureInfo はテクスチャ参照を表す。
type TextureInfo struct {
	Extensions vrmcommon.Extensions           `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras               `json:"extras,omitzero"`
	Index      gltfref.Index[gltfref.Texture] `json:"index"`
	// TexCoord はUV座標セットの番号。未指定時は0として扱われる。
	TexCoord gltfref.OptionalIndex[gltfref.Accessor] `json:"texCoord,omitzero"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (t *TextureInfo) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "textureInfo", "index"); err != nil {
		return err
	}
	type textureInfoAlias TextureInfo
	var alias textureInfoAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*t = TextureInfo(alias)
	return nil
}

// TexCoordOrDefault はUV座標セットの番号を返す。未指定時は0。
func (t *TextureInfo) TexCoordOrDefault() int {
	if t == nil {
		return 0
	}
	if texCoord, ok := t.TexCoord.Get(); ok {
		return texCoord.Int()
	}
	return 0
}

// ShadingShiftTextureInfo はスケール付きのシェーディングシフトテクスチャ参照を表す。
type ShadingShiftTextureInfo struct {
	Extensions vrmcommon.Extensions                    `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                        `json:"extras,omitzero"`
	Index      gltfref.Index[gltfref.Texture]          `json:"index"`
	Scale      *float64                                `json:"scale,omitempty"`
	TexCoord   gltfref.OptionalIndex[gltfref.Accessor] `json:"texCoord,omitzero"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (t *ShadingShiftTextureInfo) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "shadingShiftTexture", "index"); err != nil {
		return err
	}
	type textureInfoAlias ShadingShiftTextureInfo
	var alias textureInfoAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*t = ShadingShiftTextureInfo(alias)
	return nil
}

// OutlineWidthMode はアウトライン幅の解釈方法を表す。
type OutlineWidthMode string

const (
	OutlineWidthModeNone              OutlineWidthMode = "none"
	OutlineWidthModeWorldCoordinates  OutlineWidthMode = "worldCoordinates"
	OutlineWidthModeScreenCoordinates OutlineWidthMode = "screenCoordinates"
)

// UnmarshalText は既知のアウトライン幅モードのみを受け付ける。
func (o *OutlineWidthMode) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("outlineWidthMode", string(text), []OutlineWidthMode{
		OutlineWidthModeNone, OutlineWidthModeWorldCoordinates, OutlineWidthModeScreenCoordinates,
	})
	if err != nil {
		return err
	}
	*o = value
	return nil
}

// Textures は指定されているテクスチャ参照をプロパティ名付きで返す。
func (s *Schema) Textures() map[string]gltfref.Index[gltfref.Texture] {
	result := map[string]gltfref.Index[gltfref.Texture]{}
	if s == nil {
		return result
	}
	for name, info := range map[string]*TextureInfo{
		"matcapTexture":               s.MatcapTexture,
		"outlineWidthMultiplyTexture": s.OutlineWidthMultiplyTexture,
		"rimMultiplyTexture":          s.RimMultiplyTexture,
		"shadeMultiplyTexture":        s.ShadeMultiplyTexture,
		"uvAnimationMaskTexture":      s.UVAnimationMaskTexture,
	} {
		if info != nil {
			result[name] = info.Index
		}
	}
	if s.ShadingShiftTexture != nil {
		result["shadingShiftTexture"] = s.ShadingShiftTexture.Index
	}
	return result
}

// Decode はVRMC_materials_mtoon拡張のJSONを読み込む。
func Decode(data []byte) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.Decode(ExtensionName, data, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// DecodeValue は汎用のJSON値からVRMC_materials_mtoon拡張を読み込む。
func DecodeValue(value any) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.DecodeValue(ExtensionName, value, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// Encode はVRMC_materials_mtoon拡張をJSONへ変換する。
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
