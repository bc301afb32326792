// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_vrmspec/pkg/usecase/port/moutput"

// VrmSpecUsecaseDeps はVRM検査ユースケースの依存を表す。
type VrmSpecUsecaseDeps struct {
	Reader moutput.IVrmReader
	Writer moutput.IVrmWriter
}

// VrmSpecUsecase はVRM拡張の読み込み・検査・書き出しを扱う。
type VrmSpecUsecase struct {
	reader moutput.IVrmReader
	writer moutput.IVrmWriter
}

// NewVrmSpecUsecase はVRM検査ユースケースを生成する。
func NewVrmSpecUsecase(deps VrmSpecUsecaseDeps) *VrmSpecUsecase {
	return &VrmSpecUsecase{
		reader: deps.Reader,
		writer: deps.Writer,
	}
}
