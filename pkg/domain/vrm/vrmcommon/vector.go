// 指示: miu200521358
package vrmcommon

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector2 は要素数2固定の数値配列(UVのオフセットやスケール)。
type Vector2 mgl64.Vec2

// Vector3 は要素数3固定の数値配列(位置、方向、RGB色)。
type Vector3 mgl64.Vec3

// Vector4 は要素数4固定の数値配列(RGBA色)。
type Vector4 mgl64.Vec4

// Vec はmgl64.Vec2へ変換する。
func (v Vector2) Vec() mgl64.Vec2 {
	return mgl64.Vec2(v)
}

// Vec はmgl64.Vec3へ変換する。
func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// R3 はgonumのr3.Vecへ変換する。
func (v Vector3) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Vec はmgl64.Vec4へ変換する。
func (v Vector4) Vec() mgl64.Vec4 {
	return mgl64.Vec4(v)
}

// UnmarshalJSON は要素数2の配列のみを受け付ける。
func (v *Vector2) UnmarshalJSON(data []byte) error {
	values, err := decodeFixedFloats(data, 2)
	if err != nil {
		return err
	}
	copy(v[:], values)
	return nil
}

// UnmarshalJSON は要素数3の配列のみを受け付ける。
func (v *Vector3) UnmarshalJSON(data []byte) error {
	values, err := decodeFixedFloats(data, 3)
	if err != nil {
		return err
	}
	copy(v[:], values)
	return nil
}

// UnmarshalJSON は要素数4の配列のみを受け付ける。
func (v *Vector4) UnmarshalJSON(data []byte) error {
	values, err := decodeFixedFloats(data, 4)
	if err != nil {
		return err
	}
	copy(v[:], values)
	return nil
}

// decodeFixedFloats は要素数固定の数値配列を読み込む。
func decodeFixedFloats(data []byte, size int) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("要素数%dの数値配列が必要です: %w", size, err)
	}
	if values == nil {
		return nil, fmt.Errorf("要素数%dの数値配列にnullは指定できません", size)
	}
	if len(values) != size {
		return nil, fmt.Errorf("数値配列の要素数が不正です: got=%d want=%d", len(values), size)
	}
	return values, nil
}
