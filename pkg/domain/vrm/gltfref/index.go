// 指示: miu200521358
// Package gltfref はglTF配列への位置参照と、その正規化規則を提供する。
//
// 参照はインデックスと参照先配列のタグのみを保持し、範囲検証や解決は行わない。
// 一部のエクスポーターは「参照なし」を -1 で出力するため、任意参照では負値を未指定として扱う。
package gltfref

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Target は参照先配列を表すタグ型の契約。
type Target interface {
	// CollectionName は参照先配列の名前を返す。
	CollectionName() string
}

// Node はglTF nodes配列を表すタグ。
type Node struct{}

// Mesh はglTF meshes配列を表すタグ。
type Mesh struct{}

// Material はglTF materials配列を表すタグ。
type Material struct{}

// Texture はglTF textures配列を表すタグ。
type Texture struct{}

// Image はglTF images配列を表すタグ。
type Image struct{}

// Accessor はglTF accessors配列を表すタグ。
type Accessor struct{}

func (Node) CollectionName() string     { return "nodes" }
func (Mesh) CollectionName() string     { return "meshes" }
func (Material) CollectionName() string { return "materials" }
func (Texture) CollectionName() string  { return "textures" }
func (Image) CollectionName() string    { return "images" }
func (Accessor) CollectionName() string { return "accessors" }

// Index は参照先配列Tへの必須参照を表す。負値はデコードエラーになる。
type Index[T Target] int

// NewIndex はIndexを生成する。
func NewIndex[T Target](value int) Index[T] {
	return Index[T](value)
}

// Int はインデックス値を返す。
func (i Index[T]) Int() int {
	return int(i)
}

// Collection は参照先配列の名前を返す。
func (i Index[T]) Collection() string {
	var target T
	return target.CollectionName()
}

// String は "nodes[3]" 形式の文字列を返す。
func (i Index[T]) String() string {
	return fmt.Sprintf("%s[%d]", i.Collection(), int(i))
}

// UnmarshalJSON は非負整数のみを受け付ける。
func (i *Index[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		var target T
		return fmt.Errorf("%s の参照にnullは指定できません", target.CollectionName())
	}
	value, err := decodeSignedIndex(data)
	if err != nil {
		return err
	}
	if value < 0 {
		var target T
		return fmt.Errorf("%s の参照に負値は指定できません: %d", target.CollectionName(), value)
	}
	*i = Index[T](value)
	return nil
}

// OptionalIndex は参照先配列Tへの任意参照を表す。
// Validがfalseの場合は未指定で、JSONでは省略される。
type OptionalIndex[T Target] struct {
	Index Index[T]
	Valid bool
}

// Some は指定インデックスを持つOptionalIndexを生成する。
func Some[T Target](value int) OptionalIndex[T] {
	return OptionalIndex[T]{Index: Index[T](value), Valid: true}
}

// None は未指定のOptionalIndexを生成する。
func None[T Target]() OptionalIndex[T] {
	return OptionalIndex[T]{}
}

// Get はインデックスと指定有無を返す。
func (o OptionalIndex[T]) Get() (Index[T], bool) {
	return o.Index, o.Valid
}

// IsZero は未指定かを返す。omitzeroタグで参照される。
func (o OptionalIndex[T]) IsZero() bool {
	return !o.Valid
}

// String は指定時は参照文字列、未指定時は "none" を返す。
func (o OptionalIndex[T]) String() string {
	if !o.Valid {
		return "none"
	}
	return o.Index.String()
}

// MarshalJSON は未指定時にnullを出力する。
func (o OptionalIndex[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(o.Index))), nil
}

// UnmarshalJSON はnullと負値を未指定として読み込む。
func (o *OptionalIndex[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = OptionalIndex[T]{}
		return nil
	}
	value, err := decodeSignedIndex(data)
	if err != nil {
		return err
	}
	*o = SanitizeIndex[T](value)
	return nil
}

// decodeSignedIndex は整数JSON値を符号付きで読み込む。小数や文字列はエラーとする。
func decodeSignedIndex(data []byte) (int64, error) {
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return 0, fmt.Errorf("参照インデックスは整数である必要があります: %w", err)
	}
	return value, nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
