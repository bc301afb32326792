// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/usecase/port/moutput"
)

// LoadDocument はVRM文書を読み込む。repが nil の場合は既定の読み込みリポジトリを使う。
func (uc *VrmSpecUsecase) LoadDocument(rep moutput.IVrmReader, path string) (*vrm.VrmDocument, error) {
	reader := rep
	if reader == nil {
		reader = uc.reader
	}
	if reader == nil {
		return nil, fmt.Errorf("VRM読み込みリポジトリが設定されていません")
	}
	if !reader.CanLoad(path) {
		return nil, fmt.Errorf("読み込めないファイル形式です: %s", path)
	}
	doc, err := reader.Load(path)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("VRM読み込み結果が空です")
	}
	return doc, nil
}
