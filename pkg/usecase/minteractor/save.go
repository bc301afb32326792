// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/usecase/port/moutput"
)

// SaveDocument はVRM文書を保存する。repが nil の場合は既定の保存リポジトリを使う。
func (uc *VrmSpecUsecase) SaveDocument(rep moutput.IVrmWriter, path string, doc *vrm.VrmDocument) error {
	writer := rep
	if writer == nil {
		writer = uc.writer
	}
	if writer == nil {
		return fmt.Errorf("VRM保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if doc == nil {
		return fmt.Errorf("保存対象の文書が未設定です")
	}
	return writer.Save(path, doc)
}
