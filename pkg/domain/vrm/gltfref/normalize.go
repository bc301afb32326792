// 指示: miu200521358
package gltfref

import (
	"encoding/json"
	"fmt"
)

// SanitizeIndex は符号付き整数を任意参照へ変換する。負値は未指定になる。
func SanitizeIndex[T Target](value int64) OptionalIndex[T] {
	if value < 0 {
		return OptionalIndex[T]{}
	}
	return Some[T](int(value))
}

// IndexMap は名前からglTF配列への参照を引くマップ。
// JSONから読み込む際、負値のエントリはキーごと除外される。
type IndexMap[T Target] map[string]Index[T]

// SanitizeIndexMap は符号付き整数のマップから負値のエントリを除いたIndexMapを生成する。
func SanitizeIndexMap[T Target](values map[string]int64) IndexMap[T] {
	if values == nil {
		return nil
	}
	result := make(IndexMap[T], len(values))
	for key, value := range values {
		if value < 0 {
			continue
		}
		result[key] = Index[T](value)
	}
	return result
}

// UnmarshalJSON はオブジェクトを読み込み、負値のエントリを除外する。
func (m *IndexMap[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*m = nil
		return nil
	}
	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		var target T
		return fmt.Errorf("%s の参照マップが不正です: %w", target.CollectionName(), err)
	}
	*m = SanitizeIndexMap[T](raw)
	return nil
}

// IndexList は参照の配列。JSONから読み込む際、負値の要素は除外される。
type IndexList[T Target] []Index[T]

// SanitizeIndexList は符号付き整数の配列から負値の要素を除いたIndexListを生成する。
func SanitizeIndexList[T Target](values []int64) IndexList[T] {
	if values == nil {
		return nil
	}
	result := make(IndexList[T], 0, len(values))
	for _, value := range values {
		if value < 0 {
			continue
		}
		result = append(result, Index[T](value))
	}
	return result
}

// UnmarshalJSON は配列を読み込み、負値の要素を除外する。
func (l *IndexList[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*l = nil
		return nil
	}
	var raw []int64
	if err := json.Unmarshal(data, &raw); err != nil {
		var target T
		return fmt.Errorf("%s の参照配列が不正です: %w", target.CollectionName(), err)
	}
	*l = SanitizeIndexList[T](raw)
	return nil
}

// FloatMap は名前から浮動小数点値を引くマップ。
// JSONから読み込む際、値がnullのエントリはキーごと除外される。
type FloatMap map[string]float64

// SkipNullFloats はnull値(nilポインタ)のエントリを除いたFloatMapを生成する。
func SkipNullFloats(values map[string]*float64) FloatMap {
	if values == nil {
		return nil
	}
	result := make(FloatMap, len(values))
	for key, value := range values {
		if value == nil {
			continue
		}
		result[key] = *value
	}
	return result
}

// UnmarshalJSON はオブジェクトを読み込み、null値のエントリを除外する。
func (m *FloatMap) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*m = nil
		return nil
	}
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("数値プロパティマップが不正です: %w", err)
	}
	*m = SkipNullFloats(raw)
	return nil
}
