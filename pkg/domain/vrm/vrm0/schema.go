// 指示: miu200521358
// Package vrm0 はVRM 0.0の "VRM" 拡張のデータ構造を提供する。
//
// VRM 0.0 は必須フィールドを定めていないため、全フィールドを任意として扱う。
package vrm0

import (
	"encoding/json"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
)

// ExtensionName はVRM 0.0拡張の名前。
const ExtensionName = "VRM"

// Schema はVRM 0.0拡張のルートを表す。
type Schema struct {
	BlendShapeMaster *BlendShape `json:"blendShapeMaster,omitempty"`
	// ExporterVersion は出力したエクスポーターの版(例: UniVRM-0.46)。
	ExporterVersion    *string             `json:"exporterVersion,omitempty"`
	FirstPerson        *FirstPerson        `json:"firstPerson,omitempty"`
	Humanoid           *Humanoid           `json:"humanoid,omitempty"`
	MaterialProperties []Material          `json:"materialProperties,omitzero"`
	Meta               *Meta               `json:"meta,omitempty"`
	SecondaryAnimation *SecondaryAnimation `json:"secondaryAnimation,omitempty"`
	// SpecVersion はVRM仕様の版(0.0)。
	SpecVersion *string `json:"specVersion,omitempty"`
}

// BlendShape はUniVRMのBlendShapeAvatarに相当する。
type BlendShape struct {
	BlendShapeGroups []BlendShapeGroup `json:"blendShapeGroups,omitzero"`
}

// BlendShapeGroup は表情1つ分のモーフとマテリアルの組み合わせを表す。
type BlendShapeGroup struct {
	Binds []BlendShapeBind `json:"binds,omitzero"`
	// IsBinary が真の場合、利用側はウェイトを0か1に丸める。
	IsBinary       *bool                    `json:"isBinary,omitempty"`
	MaterialValues []BlendShapeMaterialBind `json:"materialValues,omitzero"`
	Name           *string                  `json:"name,omitempty"`
	PresetName     *PresetName              `json:"presetName,omitempty"`
}

// BlendShapeBind はメッシュのモーフターゲットへの割り当てを表す。
type BlendShapeBind struct {
	// Index はメッシュ内のモーフターゲット番号。
	Index  *int                                `json:"index,omitempty"`
	Mesh   gltfref.OptionalIndex[gltfref.Mesh] `json:"mesh,omitzero"`
	Weight *float64                            `json:"weight,omitempty"`
}

// BlendShapeMaterialBind はマテリアルプロパティのアニメーション値を表す。
type BlendShapeMaterialBind struct {
	MaterialName *string   `json:"materialName,omitempty"`
	PropertyName *string   `json:"propertyName,omitempty"`
	TargetValue  []float64 `json:"targetValue,omitzero"`
}

// FirstPerson は一人称視点の設定を表す。
type FirstPerson struct {
	// FirstPersonBone は一人称視点で描画を消すボーン。通常はHead。
	FirstPersonBone gltfref.OptionalIndex[gltfref.Node] `json:"firstPersonBone,omitzero"`
	// FirstPersonBoneOffset はFirstPersonBoneからHMD位置までのオフセット。
	FirstPersonBoneOffset *OptionalVector3 `json:"firstPersonBoneOffset,omitempty"`
	LookAtHorizontalInner *DegreeMap       `json:"lookAtHorizontalInner,omitempty"`
	LookAtHorizontalOuter *DegreeMap       `json:"lookAtHorizontalOuter,omitempty"`
	LookAtTypeName        *LookAtTypeName  `json:"lookAtTypeName,omitempty"`
	LookAtVerticalDown    *DegreeMap       `json:"lookAtVerticalDown,omitempty"`
	LookAtVerticalUp      *DegreeMap       `json:"lookAtVerticalUp,omitempty"`
	MeshAnnotations       []MeshAnnotation `json:"meshAnnotations,omitzero"`
}

// DegreeMap は視線入力角度から出力値への非線形対応を表す。
type DegreeMap struct {
	// Curve は (time, value, inTangent, outTangent) を4つずつ並べた値列。
	Curve []float64 `json:"curve,omitzero"`
	// XRange は入力角度のクランプ範囲(度)。
	XRange *float64 `json:"xRange,omitempty"`
	// YRange はXRangeから対応付ける出力範囲。
	YRange *float64 `json:"yRange,omitempty"`
}

// CurveKeys はCurveを4要素ずつのキーへ分割する。端数は無視する。
func (d *DegreeMap) CurveKeys() [][4]float64 {
	if d == nil {
		return nil
	}
	keys := make([][4]float64, 0, len(d.Curve)/4)
	for i := 0; i+4 <= len(d.Curve); i += 4 {
		keys = append(keys, [4]float64{d.Curve[i], d.Curve[i+1], d.Curve[i+2], d.Curve[i+3]})
	}
	return keys
}

// MeshAnnotation はメッシュ毎の一人称表示設定を表す。
type MeshAnnotation struct {
	// FirstPersonFlag は Auto, Both, ThirdPersonOnly, FirstPersonOnly のいずれか。
	FirstPersonFlag *string                             `json:"firstPersonFlag,omitempty"`
	Mesh            gltfref.OptionalIndex[gltfref.Mesh] `json:"mesh,omitzero"`
}

// Humanoid はUnityのHumanDescriptionに相当する設定とボーン対応を表す。
type Humanoid struct {
	ArmStretch        *float64       `json:"armStretch,omitempty"`
	FeetSpacing       *float64       `json:"feetSpacing,omitempty"`
	HasTranslationDoF *bool          `json:"hasTranslationDoF,omitempty"`
	HumanBones        []HumanoidBone `json:"humanBones,omitzero"`
	LegStretch        *float64       `json:"legStretch,omitempty"`
	LowerArmTwist     *float64       `json:"lowerArmTwist,omitempty"`
	LowerLegTwist     *float64       `json:"lowerLegTwist,omitempty"`
	UpperArmTwist     *float64       `json:"upperArmTwist,omitempty"`
	UpperLegTwist     *float64       `json:"upperLegTwist,omitempty"`
}

// HumanoidBone はボーン名とnodeの対応、およびUnityのHumanLimitを表す。
// 各フィールドは独立して任意であり、nodeのみ、制限値のみの指定もあり得る。
type HumanoidBone struct {
	AxisLength       *float64                            `json:"axisLength,omitempty"`
	Bone             *Bone                               `json:"bone,omitempty"`
	Center           *OptionalVector3                    `json:"center,omitempty"`
	Max              *OptionalVector3                    `json:"max,omitempty"`
	Min              *OptionalVector3                    `json:"min,omitempty"`
	Node             gltfref.OptionalIndex[gltfref.Node] `json:"node,omitzero"`
	UseDefaultValues *bool                               `json:"useDefaultValues,omitempty"`
}

// Material はシェーダー毎に異なるマテリアルパラメータを汎用的に保持する。
type Material struct {
	// FloatProperties は値がnullのキーを読込時に除外する。
	FloatProperties gltfref.FloatMap `json:"floatProperties,omitzero"`
	KeywordMap      map[string]bool  `json:"keywordMap,omitzero"`
	Name            *string          `json:"name,omitempty"`
	RenderQueue     *int             `json:"renderQueue,omitempty"`
	// Shader は VRM/MToon, VRM/UnlitTransparentZWrite, VRM_USE_GLTFSHADER などのシェーダー名。
	Shader *string           `json:"shader,omitempty"`
	TagMap map[string]string `json:"tagMap,omitzero"`
	// TextureProperties は負値の参照を読込時に除外する。
	TextureProperties gltfref.IndexMap[gltfref.Texture] `json:"textureProperties,omitzero"`
	VectorProperties  map[string][]float64              `json:"vectorProperties,omitzero"`
}

// Meta はモデル情報と利用許諾を表す。
type Meta struct {
	AllowedUserName      *AllowedUserName `json:"allowedUserName,omitempty"`
	Author               *string          `json:"author,omitempty"`
	CommercialUssageName *UssageName      `json:"commercialUssageName,omitempty"`
	ContactInformation   *string          `json:"contactInformation,omitempty"`
	LicenseName          *LicenseName     `json:"licenseName,omitempty"`
	// OtherLicenseURL はLicenseNameがOtherの場合のライセンス文書URL。
	OtherLicenseURL    *string                                `json:"otherLicenseUrl,omitempty"`
	OtherPermissionURL *string                                `json:"otherPermissionUrl,omitempty"`
	Reference          *string                                `json:"reference,omitempty"`
	SexualUssageName   *UssageName                            `json:"sexualUssageName,omitempty"`
	Texture            gltfref.OptionalIndex[gltfref.Texture] `json:"texture,omitzero"`
	Title              *string                                `json:"title,omitempty"`
	Version            *string                                `json:"version,omitempty"`
	ViolentUssageName  *UssageName                            `json:"violentUssageName,omitempty"`
}

// SecondaryAnimation は髪や尻尾などの揺れもの設定を表す。
type SecondaryAnimation struct {
	BoneGroups     []SecondaryAnimationSpring        `json:"boneGroups,omitzero"`
	ColliderGroups []SecondaryAnimationColliderGroup `json:"colliderGroups,omitzero"`
}

// SecondaryAnimationSpring は揺れもののボーングループを表す。
type SecondaryAnimationSpring struct {
	// Bones は揺れもののルートボーンのnode。
	Bones []gltfref.Index[gltfref.Node] `json:"bones,omitzero"`
	// Center は揺れの基準点とするnode。
	Center gltfref.OptionalIndex[gltfref.Node] `json:"center,omitzero"`
	// ColliderGroups はSecondaryAnimation.ColliderGroupsの番号。
	ColliderGroups []int    `json:"colliderGroups,omitzero"`
	Comment        *string  `json:"comment,omitempty"`
	DragForce      *float64 `json:"dragForce,omitempty"`
	// GravityDir は重力方向。(0, -1, 0) で重力、(1, 0, 0) で風になる。
	GravityDir   *OptionalVector3 `json:"gravityDir,omitempty"`
	GravityPower *float64         `json:"gravityPower,omitempty"`
	HitRadius    *float64         `json:"hitRadius,omitempty"`
	// Stiffiness は初期姿勢へ戻る力。綴りはVRM 0.0のキー名に合わせている。
	Stiffiness *float64 `json:"stiffiness,omitempty"`
}

// SecondaryAnimationColliderGroup はnodeに付随する球コライダーの集合を表す。
type SecondaryAnimationColliderGroup struct {
	Colliders []Collider                          `json:"colliders,omitzero"`
	Node      gltfref.OptionalIndex[gltfref.Node] `json:"node,omitzero"`
}

// Collider は球コライダーを表す。
type Collider struct {
	// Offset はnodeからの左手系Y-upのローカル座標。
	Offset *OptionalVector3 `json:"offset,omitempty"`
	Radius *float64         `json:"radius,omitempty"`
}

// Decode はVRM 0.0拡張のJSONを読み込む。
func Decode(data []byte) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.Decode(ExtensionName, data, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// DecodeValue は汎用のJSON値からVRM 0.0拡張を読み込む。
func DecodeValue(value any) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.DecodeValue(ExtensionName, value, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// Encode はVRM 0.0拡張をJSONへ変換する。未指定のフィールドは出力しない。
func Encode(schema *Schema) json.RawMessage {
	if schema == nil {
		return json.RawMessage("{}")
	}
	return vrmcommon.Encode(schema)
}

// Clone は深いコピーを返す。
func (s *Schema) Clone() *Schema {
	return vrmcommon.Clone(s)
}

// logVrm0Debug はVRM 0.0解析のデバッグログを出力する。
func logVrm0Debug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
