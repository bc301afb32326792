// 指示: miu200521358
// Package vrmcommon はVRM拡張スキーマ間で共有する値型とJSON変換処理を提供する。
package vrmcommon

import (
	"bytes"
	"encoding/json"
	"slices"
)

// RawValue は解釈せずに保持する任意のJSON値。
// 読込時に空白を除去した形で保持し、nullは未指定(nil)として扱う。
type RawValue []byte

// NewRawValue は任意の値をJSON化してRawValueを生成する。
func NewRawValue(value any) (RawValue, error) {
	b, err := Marshal(value)
	if err != nil {
		return nil, err
	}
	return compactRawValue(b)
}

// MustRawValue はJSON文字列からRawValueを生成する。不正なJSONの場合はpanicする。
func MustRawValue(text string) RawValue {
	value, err := compactRawValue([]byte(text))
	if err != nil {
		panic(err)
	}
	return value
}

// IsZero は未指定かを返す。
func (v RawValue) IsZero() bool {
	return len(v) == 0
}

// Decode は保持しているJSONを指定の値へ読み込む。
func (v RawValue) Decode(target any) error {
	if v.IsZero() {
		return json.Unmarshal([]byte("null"), target)
	}
	return json.Unmarshal(v, target)
}

// MarshalJSON は保持しているJSONをそのまま返す。
func (v RawValue) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON はJSON値を空白除去して保持する。
func (v *RawValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = nil
		return nil
	}
	compacted, err := compactRawValue(data)
	if err != nil {
		return err
	}
	*v = compacted
	return nil
}

func compactRawValue(data []byte) (RawValue, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)))
	if err := json.Compact(buf, data); err != nil {
		return nil, err
	}
	if bytes.Equal(buf.Bytes(), []byte("null")) {
		return nil, nil
	}
	return RawValue(buf.Bytes()), nil
}

// Extras はglTFのextrasに相当する自由形式の値。
type Extras = RawValue

// Extensions は拡張名から、名前付きの任意JSON値を引くマップ。
// 内容は解釈せず、読み書きでそのまま引き継ぐ。
type Extensions map[string]map[string]RawValue

// Names は拡張名の一覧を昇順で返す。
func (e Extensions) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
