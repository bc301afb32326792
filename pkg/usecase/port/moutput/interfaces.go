// 指示: miu200521358
package moutput

import "github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"

// IVrmReader はVRM文書の読み込み契約を表す。
type IVrmReader interface {
	CanLoad(path string) bool
	Load(path string) (*vrm.VrmDocument, error)
}

// IVrmWriter はVRM文書の書き込み契約を表す。
type IVrmWriter interface {
	Save(path string, doc *vrm.VrmDocument) error
}
