// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/usecase/port/moutput"
)

// InspectProgressEventType は検査処理の進捗イベント種別を表す。
type InspectProgressEventType string

const (
	// InspectProgressEventTypeInputValidated は入力検証完了イベントを表す。
	InspectProgressEventTypeInputValidated InspectProgressEventType = "input_validated"
	// InspectProgressEventTypeDocumentLoaded は文書読み込み完了イベントを表す。
	InspectProgressEventTypeDocumentLoaded InspectProgressEventType = "document_loaded"
	// InspectProgressEventTypeWarningsCollected は警告収集完了イベントを表す。
	InspectProgressEventTypeWarningsCollected InspectProgressEventType = "warnings_collected"
	// InspectProgressEventTypeRoundTripVerified は再読込検証完了イベントを表す。
	InspectProgressEventTypeRoundTripVerified InspectProgressEventType = "round_trip_verified"
	// InspectProgressEventTypeOutputPathResolved は出力パス解決完了イベントを表す。
	InspectProgressEventTypeOutputPathResolved InspectProgressEventType = "output_path_resolved"
	// InspectProgressEventTypeDocumentSaved は文書保存完了イベントを表す。
	InspectProgressEventTypeDocumentSaved InspectProgressEventType = "document_saved"
	// InspectProgressEventTypeArtifactsExported は補助出力完了イベントを表す。
	InspectProgressEventTypeArtifactsExported InspectProgressEventType = "artifacts_exported"
)

// InspectProgressEvent は検査処理の進捗イベントを表す。
type InspectProgressEvent struct {
	Type           InspectProgressEventType
	ExtensionCount int
	WarningCount   int
}

// IInspectProgressReporter は検査処理の進捗通知契約を表す。
type IInspectProgressReporter interface {
	// ReportInspectProgress は検査処理進捗を通知する。
	ReportInspectProgress(event InspectProgressEvent)
}

// InspectRequest はVRM検査要求を表す。
type InspectRequest struct {
	InputPath string
	// Document が指定されている場合は読み込みを省略する。
	Document *vrm.VrmDocument
	Reader   moutput.IVrmReader
	Writer   moutput.IVrmWriter
	// VerifyRoundTrip は各拡張を再エンコードして読み直せるかを検証する。
	VerifyRoundTrip bool
	// Save は型付きの拡張を埋め直した文書をOutputPathへ保存する。
	Save bool
	// Export はglTF JSONと拡張ごとのJSONをOutputPathと同じ階層のglTFディレクトリへ出力する。
	Export bool
	// OutputPath が空の場合はOutputDir(空なら入力ファイルと同じ階層)に日時付きディレクトリを作る。
	OutputPath       string
	OutputDir        string
	ProgressReporter IInspectProgressReporter
}

// InspectResult はVRM検査結果を表す。
type InspectResult struct {
	Document   *vrm.VrmDocument
	Summary    *Summary
	Warnings   []model.VrmWarning
	OutputPath string
	// ArtifactDir はExport指定時の出力先。
	ArtifactDir    string
	ArtifactPaths  map[string]string
	RoundTripValid bool
}
