// 指示: miu200521358
package springbone

import (
	"fmt"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
)

// ShapeKind はコライダー形状の種別を表す。
type ShapeKind int

const (
	// ShapeKindNone はsphereもcapsuleも指定されていない。
	ShapeKindNone ShapeKind = iota
	// ShapeKindSphere はsphereのみが指定されている。
	ShapeKindSphere
	// ShapeKindCapsule はcapsuleのみが指定されている。
	ShapeKindCapsule
	// ShapeKindAmbiguous はsphereとcapsuleの両方が指定されている。
	ShapeKindAmbiguous
)

// String は種別名を返す。
func (k ShapeKind) String() string {
	switch k {
	case ShapeKindSphere:
		return "sphere"
	case ShapeKindCapsule:
		return "capsule"
	case ShapeKindAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Kind は指定されている形状の種別を返す。
func (s ColliderShape) Kind() ShapeKind {
	switch {
	case s.Sphere != nil && s.Capsule != nil:
		return ShapeKindAmbiguous
	case s.Sphere != nil:
		return ShapeKindSphere
	case s.Capsule != nil:
		return ShapeKindCapsule
	default:
		return ShapeKindNone
	}
}

// Warnings は拡張内で完結する意味的な問題を列挙する。
// 形状の曖昧さ、拡張内の参照範囲外、空のjointsを対象とし、ノード階層に依存する検証は行わない。
func (s *Schema) Warnings() []model.VrmWarning {
	if s == nil {
		return nil
	}
	var warnings []model.VrmWarning
	for i, collider := range s.Colliders {
		path := fmt.Sprintf("colliders[%d].shape", i)
		switch collider.Shape.Kind() {
		case ShapeKindAmbiguous:
			warnings = append(warnings, model.NewVrmWarning(
				model.VrmWarningColliderShapeAmbiguous, path, "sphereとcapsuleの両方が指定されています"))
		case ShapeKindNone:
			warnings = append(warnings, model.NewVrmWarning(
				model.VrmWarningColliderShapeEmpty, path, "sphereとcapsuleのどちらも指定されていません"))
		}
	}
	for i, group := range s.ColliderGroups {
		for j, collider := range group.Colliders {
			if collider.Int() >= len(s.Colliders) {
				warnings = append(warnings, model.NewVrmWarning(
					model.VrmWarningColliderIndexOutOfRange,
					fmt.Sprintf("colliderGroups[%d].colliders[%d]", i, j),
					"存在しないコライダーを参照しています: %s (件数=%d)", collider, len(s.Colliders)))
			}
		}
	}
	for i, spring := range s.Springs {
		if len(spring.Joints) == 0 {
			warnings = append(warnings, model.NewVrmWarning(
				model.VrmWarningSpringJointsEmpty, fmt.Sprintf("springs[%d].joints", i), "jointsが空です"))
		}
		for j, group := range spring.ColliderGroups {
			if group.Int() >= len(s.ColliderGroups) {
				warnings = append(warnings, model.NewVrmWarning(
					model.VrmWarningColliderGroupIndexOutOfRange,
					fmt.Sprintf("springs[%d].colliderGroups[%d]", i, j),
					"存在しないコライダーグループを参照しています: %s (件数=%d)", group, len(s.ColliderGroups)))
			}
		}
	}
	return warnings
}
