// 指示: miu200521358
package vrm0

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// OptionalVector3 はx,y,zを個別に省略できる3次元ベクトル。
// VRM 0.0 の出力には成分が欠けたものがあるため、各成分を任意としている。
type OptionalVector3 struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// NewOptionalVector3 は全成分を指定したOptionalVector3を生成する。
func NewOptionalVector3(x, y, z float64) *OptionalVector3 {
	return &OptionalVector3{X: &x, Y: &y, Z: &z}
}

// IsComplete は全成分が指定されているかを返す。
func (v *OptionalVector3) IsComplete() bool {
	return v != nil && v.X != nil && v.Y != nil && v.Z != nil
}

// Resolve は欠けた成分を既定値で補ったr3.Vecを返す。
func (v *OptionalVector3) Resolve(defaultValue r3.Vec) r3.Vec {
	if v == nil {
		return defaultValue
	}
	resolved := defaultValue
	if v.X != nil {
		resolved.X = *v.X
	}
	if v.Y != nil {
		resolved.Y = *v.Y
	}
	if v.Z != nil {
		resolved.Z = *v.Z
	}
	return resolved
}
