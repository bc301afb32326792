// 指示: miu200521358
// Package merr はエラーID付きのエラー型を提供する。
package merr

import (
	"errors"
	"fmt"
)

// エラーID一覧。
const (
	IoFileNotFoundErrorID       = "14101"
	IoExtInvalidErrorID         = "14102"
	IoParseFailedErrorID        = "14103"
	IoFormatNotSupportedErrorID = "14104"
	StructuralDecodeErrorID     = "15101"
)

// CommonError はエラーIDとメッセージ、原因エラーを保持する。
type CommonError struct {
	id      string
	message string
	cause   error
}

// NewCommonError はCommonErrorを生成する。
func NewCommonError(id string, format string, cause error, params ...any) *CommonError {
	message := format
	if len(params) > 0 {
		message = fmt.Sprintf(format, params...)
	}
	return &CommonError{id: id, message: message, cause: cause}
}

// ErrorID はエラーIDを返す。
func (e *CommonError) ErrorID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Message は原因を含まないメッセージを返す。
func (e *CommonError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Error はエラーメッセージを返す。
func (e *CommonError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.id, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.id, e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *CommonError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// ExtractErrorID はエラー連鎖から最初に見つかったエラーIDを返す。
func ExtractErrorID(err error) string {
	var commonErr *CommonError
	if errors.As(err, &commonErr) {
		return commonErr.ErrorID()
	}
	return ""
}

// NewStructuralDecodeError はJSON構造が型定義を満たさない場合のエラーを生成する。
func NewStructuralDecodeError(format string, cause error, params ...any) error {
	return NewCommonError(StructuralDecodeErrorID, format, cause, params...)
}

// IsStructuralDecodeError は構造デコードエラーかを判定する。
func IsStructuralDecodeError(err error) bool {
	return ExtractErrorID(err) == StructuralDecodeErrorID
}

// NewIoFileNotFound はファイル未検出エラーを生成する。
func NewIoFileNotFound(path string, cause error) error {
	return NewCommonError(IoFileNotFoundErrorID, "ファイルが見つかりません: %s", cause, path)
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, cause error) error {
	return NewCommonError(IoExtInvalidErrorID, "拡張子が未対応です: %s", cause, path)
}

// NewIoParseFailed は入力解析失敗エラーを生成する。
func NewIoParseFailed(format string, cause error, params ...any) error {
	return NewCommonError(IoParseFailedErrorID, format, cause, params...)
}

// NewIoFormatNotSupported は未対応形式エラーを生成する。
func NewIoFormatNotSupported(format string, cause error, params ...any) error {
	return NewCommonError(IoFormatNotSupportedErrorID, format, cause, params...)
}
