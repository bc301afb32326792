// 指示: miu200521358
package model

import "fmt"

const (
	// VrmWarningColliderShapeAmbiguous は sphere と capsule の両方が指定されたコライダー形状の警告。
	VrmWarningColliderShapeAmbiguous = "VrmWarningColliderShapeAmbiguous"
	// VrmWarningColliderShapeEmpty は sphere と capsule のどちらも指定されていないコライダー形状の警告。
	VrmWarningColliderShapeEmpty = "VrmWarningColliderShapeEmpty"
	// VrmWarningColliderIndexOutOfRange は colliderGroups から存在しないコライダーを参照した警告。
	VrmWarningColliderIndexOutOfRange = "VrmWarningColliderIndexOutOfRange"
	// VrmWarningColliderGroupIndexOutOfRange は springs から存在しないコライダーグループを参照した警告。
	VrmWarningColliderGroupIndexOutOfRange = "VrmWarningColliderGroupIndexOutOfRange"
	// VrmWarningSpringJointsEmpty は joints が空の spring の警告。
	VrmWarningSpringJointsEmpty = "VrmWarningSpringJointsEmpty"
	// VrmWarningSpringChainBroken は joint が直前の joint の子孫でない警告。
	VrmWarningSpringChainBroken = "VrmWarningSpringChainBroken"
	// VrmWarningRequiredBoneMissing は必須ヒューマノイドボーン未割当の警告。
	VrmWarningRequiredBoneMissing = "VrmWarningRequiredBoneMissing"
	// VrmWarningLegacyPresetUnknown は VRM 0.0 の presetName が unknown の表情の警告。
	VrmWarningLegacyPresetUnknown = "VrmWarningLegacyPresetUnknown"
)

// VrmWarning は構造的には読み込めたが意味的に曖昧な箇所を表す。
type VrmWarning struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// NewVrmWarning は書式付きのメッセージでVrmWarningを生成する。
func NewVrmWarning(id string, path string, format string, params ...any) VrmWarning {
	return VrmWarning{ID: id, Path: path, Message: fmt.Sprintf(format, params...)}
}

// String は "[ID] path: message" 形式の文字列を返す。
func (w VrmWarning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.ID, w.Path, w.Message)
}

// CountVrmWarnings は警告IDごとの件数を返す。
func CountVrmWarnings(warnings []VrmWarning) map[string]int {
	counts := map[string]int{}
	for _, warning := range warnings {
		counts[warning.ID]++
	}
	return counts
}
