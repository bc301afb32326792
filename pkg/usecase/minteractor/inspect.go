// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
)

// Inspect はVRM入力を読み込み、概要と警告を集める。
// 要求に応じて再読込検証、保存、補助出力を行う。
func (uc *VrmSpecUsecase) Inspect(request InspectRequest) (*InspectResult, error) {
	if strings.TrimSpace(request.InputPath) == "" && request.Document == nil {
		return nil, fmt.Errorf("入力VRMパスが未指定です")
	}
	reportInspectProgress(request.ProgressReporter, InspectProgressEvent{Type: InspectProgressEventTypeInputValidated})

	doc := request.Document
	if doc == nil {
		loaded, err := uc.LoadDocument(request.Reader, request.InputPath)
		if err != nil {
			return nil, err
		}
		doc = loaded
	}
	if doc.Extensions == nil {
		doc.Extensions = vrm.NewExtensionSet()
	}
	result := &InspectResult{
		Document: doc,
		Summary:  BuildSummary(doc),
	}
	reportInspectProgress(request.ProgressReporter, InspectProgressEvent{
		Type:           InspectProgressEventTypeDocumentLoaded,
		ExtensionCount: len(result.Summary.Extensions),
	})

	result.Warnings = CollectWarnings(doc)
	for _, warning := range result.Warnings {
		logInspectDebug("VRM警告: %s", warning.String())
	}
	reportInspectProgress(request.ProgressReporter, InspectProgressEvent{
		Type:         InspectProgressEventTypeWarningsCollected,
		WarningCount: len(result.Warnings),
	})

	if request.VerifyRoundTrip {
		if err := VerifyRoundTrip(doc.Extensions); err != nil {
			return nil, err
		}
		result.RoundTripValid = true
		reportInspectProgress(request.ProgressReporter, InspectProgressEvent{Type: InspectProgressEventTypeRoundTripVerified})
	}

	if !request.Save && !request.Export {
		return result, nil
	}
	inputPath := request.InputPath
	if strings.TrimSpace(inputPath) == "" {
		inputPath = doc.Path
	}
	outputPath, err := resolveOutputPath(inputPath, request.OutputPath, request.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := createOutputDir(outputPath); err != nil {
		return nil, err
	}
	result.OutputPath = outputPath
	reportInspectProgress(request.ProgressReporter, InspectProgressEvent{Type: InspectProgressEventTypeOutputPathResolved})

	if request.Save {
		if err := uc.SaveDocument(request.Writer, outputPath, doc); err != nil {
			return nil, err
		}
		logInspectInfo("VRM保存完了: path=%s", outputPath)
		reportInspectProgress(request.ProgressReporter, InspectProgressEvent{Type: InspectProgressEventTypeDocumentSaved})
	}
	if request.Export {
		artifactDir, artifacts, err := exportOutputLayout(outputPath, doc)
		if err != nil {
			return nil, err
		}
		result.ArtifactDir = artifactDir
		result.ArtifactPaths = artifacts.ExtensionPaths
		logInspectInfo("補助出力完了: dir=%s extensions=%d", artifactDir, len(artifacts.ExtensionPaths))
		reportInspectProgress(request.ProgressReporter, InspectProgressEvent{
			Type:           InspectProgressEventTypeArtifactsExported,
			ExtensionCount: len(artifacts.ExtensionPaths),
		})
	}
	return result, nil
}

// CollectWarnings は拡張単位の警告にspringのnode連結検証を加えて返す。
func CollectWarnings(doc *vrm.VrmDocument) []model.VrmWarning {
	if doc == nil || doc.Extensions == nil {
		return nil
	}
	warnings := doc.Extensions.Warnings()
	warnings = append(warnings, CheckSpringChains(doc.Extensions.SpringBone, doc.NodeParents)...)
	return warnings
}

// reportInspectProgress は進捗通知先があれば通知する。
func reportInspectProgress(reporter IInspectProgressReporter, event InspectProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportInspectProgress(event)
}

// logInspectInfo は情報ログを出力する。
func logInspectInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logInspectDebug はデバッグログを出力する。
func logInspectDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}
