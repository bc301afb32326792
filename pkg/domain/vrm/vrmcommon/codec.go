// 指示: miu200521358
package vrmcommon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
	"github.com/tiendc/go-deepcopy"
)

// Decode は拡張オブジェクトのJSONを型付きの値へ読み込む。
// ルートがオブジェクトでない場合や型が合わない場合は構造デコードエラーを返す。
func Decode(extensionName string, data []byte, target any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return merr.NewStructuralDecodeError("%s拡張はJSONオブジェクトである必要があります", nil, extensionName)
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return merr.NewStructuralDecodeError("%s拡張のJSON解析に失敗しました", err, extensionName)
	}
	return nil
}

// DecodeValue は汎用のJSON値(map[string]any、json.RawMessage、[]byte等)を型付きの値へ読み込む。
func DecodeValue(extensionName string, value any, target any) error {
	data, err := valueToJSON(value)
	if err != nil {
		return merr.NewStructuralDecodeError("%s拡張のJSON化に失敗しました", err, extensionName)
	}
	return Decode(extensionName, data, target)
}

func valueToJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte("null"), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case RawValue:
		return v.MarshalJSON()
	default:
		return Marshal(v)
	}
}

// Encode は型付きの値をJSONへ変換する。
// 非有限の浮動小数点値(NaN、Inf)はJSONで表現できないため、含まれる場合はpanicする。
func Encode(value any) json.RawMessage {
	data, err := Marshal(value)
	if err != nil {
		panic(fmt.Sprintf("VRM拡張のJSON化に失敗しました: %v", err))
	}
	return json.RawMessage(data)
}

// Marshal はHTMLエスケープを行わずにJSONへ変換する。
// 必須フィールドを補うMarshalJSON実装から呼ばれ、extrasの文字列をそのまま保つ。
func Marshal(value any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Clone は値を深いコピーで複製する。
func Clone[T any](src *T) *T {
	if src == nil {
		return nil
	}
	var dst T
	if err := deepcopy.Copy(&dst, *src); err != nil {
		logCommonWarn("深いコピーに失敗したためJSON経由で複製します: %v", err)
		var fallback T
		if err := json.Unmarshal(Encode(src), &fallback); err != nil {
			panic(fmt.Sprintf("VRM拡張の複製に失敗しました: %v", err))
		}
		return &fallback
	}
	return &dst
}

// RequireFields はJSONオブジェクトに必須フィールドが存在し、nullでないことを検証する。
func RequireFields(data []byte, owner string, names ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%s はJSONオブジェクトである必要があります: %w", owner, err)
	}
	if fields == nil {
		return fmt.Errorf("%s にnullは指定できません", owner)
	}
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			return fmt.Errorf("%s.%s は必須です", owner, name)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%s.%s にnullは指定できません", owner, name)
		}
	}
	return nil
}

// ParseEnum は閉じた語彙に含まれる文字列のみを列挙値として受け付ける。
func ParseEnum[E ~string](kind string, text string, values []E) (E, error) {
	value := E(text)
	if slices.Contains(values, value) {
		return value, nil
	}
	return "", fmt.Errorf("%s に未知の値が指定されました: %q", kind, text)
}

// logCommonWarn はVRM共通処理の警告ログを出力する。
func logCommonWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}
