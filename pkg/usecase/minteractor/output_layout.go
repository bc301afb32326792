// 指示: miu200521358
package minteractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	iovrm "github.com/miu200521358/mu_vrmspec/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
)

const (
	defaultGltfDirName = "glTF"
	outputDirFileMode  = 0o755
)

var nowFunc = time.Now

// BuildDefaultOutputPath は入力VRMパスから既定の出力パスを生成する。
// outputDirが空の場合は入力ファイルと同じディレクトリの下に作る。
func BuildDefaultOutputPath(inputPath string, outputDir string) string {
	return buildDefaultOutputPathAt(inputPath, outputDir, nowFunc())
}

// buildDefaultOutputPathAt は指定時刻で既定の出力パスを生成する。拡張子は入力と同じにする。
func buildDefaultOutputPathAt(inputPath string, outputDir string, now time.Time) string {
	dir := strings.TrimSpace(outputDir)
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	ext := filepath.Ext(inputPath)
	base := strings.TrimSpace(strings.TrimSuffix(filepath.Base(inputPath), ext))
	if base == "" {
		return ""
	}
	stamp := now.Format("20060102150405")
	outDir := filepath.Join(dir, fmt.Sprintf("%s_%s", base, stamp))
	return filepath.Join(outDir, base+ext)
}

// resolveOutputPath は保存先パスを解決し、拡張子を検証する。
func resolveOutputPath(inputPath string, outputPath string, outputDir string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		resolved = BuildDefaultOutputPath(inputPath, outputDir)
	}
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("保存先パスが未指定です")
	}
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".vrm", ".glb", ".gltf":
		return resolved, nil
	}
	return "", fmt.Errorf("保存先拡張子が .vrm/.glb/.gltf ではありません: %s", resolved)
}

// createOutputDir は保存先ディレクトリを作成する。
func createOutputDir(outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if outputDir == "" {
		return fmt.Errorf("保存先ディレクトリの解決に失敗しました")
	}
	if err := os.MkdirAll(outputDir, outputDirFileMode); err != nil {
		return fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}

// exportOutputLayout は保存先と同じ階層のglTFディレクトリへ補助出力を生成する。
func exportOutputLayout(outputPath string, doc *vrm.VrmDocument) (string, *iovrm.ArtifactExportResult, error) {
	gltfDir := filepath.Join(filepath.Dir(outputPath), defaultGltfDirName)
	artifacts, err := iovrm.ExportArtifacts(doc, gltfDir)
	if err != nil {
		return "", nil, err
	}
	return gltfDir, artifacts, nil
}
