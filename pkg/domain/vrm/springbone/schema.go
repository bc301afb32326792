// 指示: miu200521358
// Package springbone はVRM 1.0の "VRMC_springBone" 拡張のデータ構造を提供する。
//
// jointsは先頭から順に直前のjointの子孫である必要があるが、ノード階層を持たないため
// デコード時には検証しない。
package springbone

import (
	"encoding/json"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// ExtensionName はスプリングボーン拡張の名前。
const ExtensionName = "VRMC_springBone"

// ColliderTarget はSchema.Collidersを表す参照タグ。
type ColliderTarget struct{}

// ColliderGroupTarget はSchema.ColliderGroupsを表す参照タグ。
type ColliderGroupTarget struct{}

func (ColliderTarget) CollectionName() string      { return "colliders" }
func (ColliderGroupTarget) CollectionName() string { return "colliderGroups" }

// Schema はVRMC_springBone拡張のルートを表す。
type Schema struct {
	ColliderGroups []ColliderGroup      `json:"colliderGroups,omitzero"`
	Colliders      []Collider           `json:"colliders,omitzero"`
	Extensions     vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras         vrmcommon.Extras     `json:"extras,omitzero"`
	SpecVersion    string               `json:"specVersion"`
	Springs        []Spring             `json:"springs,omitzero"`
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

// ColliderGroup はspringから参照されるコライダーの集合を表す。
type ColliderGroup struct {
	Colliders  []gltfref.Index[ColliderTarget] `json:"colliders"`
	Extensions vrmcommon.Extensions            `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras                `json:"extras,omitzero"`
	Name       *string                         `json:"name,omitempty"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (g *ColliderGroup) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "colliderGroup", "colliders"); err != nil {
		return err
	}
	type groupAlias ColliderGroup
	var alias groupAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*g = ColliderGroup(alias)
	return nil
}

// MarshalJSON はcollidersが未設定でも空の配列を出力する。
func (g ColliderGroup) MarshalJSON() ([]byte, error) {
	type groupAlias ColliderGroup
	alias := groupAlias(g)
	if alias.Colliders == nil {
		alias.Colliders = []gltfref.Index[ColliderTarget]{}
	}
	return vrmcommon.Marshal(alias)
}

// Collider はnodeに付随する衝突判定形状を表す。
type Collider struct {
	Extensions vrmcommon.Extensions        `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras            `json:"extras,omitzero"`
	Node       gltfref.Index[gltfref.Node] `json:"node"`
	Shape      ColliderShape               `json:"shape"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (c *Collider) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "collider", "node", "shape"); err != nil {
		return err
	}
	type colliderAlias Collider
	var alias colliderAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*c = Collider(alias)
	return nil
}

// ColliderShape はsphereとcapsuleのどちらか一方を持つ形状を表す。
// 両方または一方も指定されていない形状も読み込めるが、Kindで判別できる。
type ColliderShape struct {
	Capsule    *ColliderShapeCapsule `json:"capsule,omitempty"`
	Extensions vrmcommon.Extensions  `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras      `json:"extras,omitzero"`
	Sphere     *ColliderShapeSphere  `json:"sphere,omitempty"`
}

// ColliderShapeSphere は球形状を表す。
type ColliderShapeSphere struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// Offset はnodeからのローカル座標。
	Offset *vrmcommon.Vector3 `json:"offset,omitempty"`
	Radius *float64           `json:"radius,omitempty"`
}

// ColliderShapeCapsule はカプセル形状を表す。
type ColliderShapeCapsule struct {
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	Offset     *vrmcommon.Vector3   `json:"offset,omitempty"`
	Radius     *float64             `json:"radius,omitempty"`
	// Tail はnodeからのカプセル終端のローカル座標。
	Tail *vrmcommon.Vector3 `json:"tail,omitempty"`
}

// Spring は揺れるjointの連なりを表す。
type Spring struct {
	// Center は揺れを計算する座標空間の基準node。
	Center gltfref.OptionalIndex[gltfref.Node] `json:"center,omitzero"`
	// ColliderGroups は負値の要素を読込時に除外する。
	ColliderGroups gltfref.IndexList[ColliderGroupTarget] `json:"colliderGroups,omitzero"`
	Extensions     vrmcommon.Extensions                   `json:"extensions,omitzero"`
	Extras         vrmcommon.Extras                       `json:"extras,omitzero"`
	Joints         []Joint                                `json:"joints"`
	Name           *string                                `json:"name,omitempty"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (s *Spring) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "spring", "joints"); err != nil {
		return err
	}
	type springAlias Spring
	var alias springAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = Spring(alias)
	return nil
}

// MarshalJSON はjointsが未設定でも空の配列を出力する。
func (s Spring) MarshalJSON() ([]byte, error) {
	type springAlias Spring
	alias := springAlias(s)
	if alias.Joints == nil {
		alias.Joints = []Joint{}
	}
	return vrmcommon.Marshal(alias)
}

// Joint は揺れもののボーン1本分の物理パラメータを表す。
type Joint struct {
	DragForce  *float64             `json:"dragForce,omitempty"`
	Extensions vrmcommon.Extensions `json:"extensions,omitzero"`
	Extras     vrmcommon.Extras     `json:"extras,omitzero"`
	// GravityDir は重力方向。
	GravityDir   *vrmcommon.Vector3          `json:"gravityDir,omitempty"`
	GravityPower *float64                    `json:"gravityPower,omitempty"`
	HitRadius    *float64                    `json:"hitRadius,omitempty"`
	Node         gltfref.Index[gltfref.Node] `json:"node"`
	Stiffness    *float64                    `json:"stiffness,omitempty"`
}

// UnmarshalJSON は必須フィールドを検証してから読み込む。
func (j *Joint) UnmarshalJSON(data []byte) error {
	if err := vrmcommon.RequireFields(data, "joint", "node"); err != nil {
		return err
	}
	type jointAlias Joint
	var alias jointAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*j = Joint(alias)
	return nil
}

// Decode はVRMC_springBone拡張のJSONを読み込む。
func Decode(data []byte) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.Decode(ExtensionName, data, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// DecodeValue は汎用のJSON値からVRMC_springBone拡張を読み込む。
func DecodeValue(value any) (*Schema, error) {
	schema := &Schema{}
	if err := vrmcommon.DecodeValue(ExtensionName, value, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// Encode はVRMC_springBone拡張をJSONへ変換する。
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
