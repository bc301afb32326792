// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_vrmspec/pkg/adapter/io_gltf"
	"github.com/miu200521358/mu_vrmspec/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/usecase/minteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ検証の実行設定を表す。
type batchConfig struct {
	OutputRoot string
	InputPaths []string
	DryRun     bool
	FailFast   bool
}

// checkEntry は1モデル分の検証入力情報を表す。
type checkEntry struct {
	Index      int
	SourcePath string
	ModelName  string
	CaseDir    string
	OutputPath string
}

// checkResult は1モデル分の検証結果を表す。
type checkResult struct {
	Entry        checkEntry
	Status       string
	Duration     time.Duration
	Err          error
	WarningCount int
	StageInfo    string
}

// inspectProgressCollector は Inspect の進捗イベントを収集する。
type inspectProgressCollector struct {
	eventCounts  map[minteractor.InspectProgressEventType]int
	extensionMax int
}

// main はVRM拡張の一括再読込検証を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括検証を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries := buildCheckEntries(config.OutputRoot, config.InputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "検証対象モデルがありません")
		return 2
	}

	results := executeBatchCheck(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
// 入力は位置引数と -list で指定した一覧ファイル(1行1パス、#始まりはコメント)から集める。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	outputRoot := flag.String("output-root", defaultOutputRoot, "再保存結果の出力ルートディレクトリ")
	listPath := flag.String("list", "", "入力パス一覧ファイル")
	dryRun := flag.Bool("dry-run", false, "実検証せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	inputPaths := append([]string(nil), flag.Args()...)
	if strings.TrimSpace(*listPath) != "" {
		listed, err := readInputList(*listPath)
		if err != nil {
			return batchConfig{}, err
		}
		inputPaths = append(inputPaths, listed...)
	}
	return batchConfig{
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		InputPaths: inputPaths,
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// readInputList は一覧ファイルから入力パスを読み込む。
func readInputList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("入力一覧の読み込みに失敗しました: %w", err)
	}
	var paths []string
	for _, line := range strings.Split(string(b), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		paths = append(paths, trimmed)
	}
	return paths, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "output"), nil
}

// buildCheckEntries は入力パス一覧から検証対象エントリを生成する。
func buildCheckEntries(outputRoot string, inputPaths []string) []checkEntry {
	entries := make([]checkEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		resolvedInputPath := normalizeInputPath(rawPath)
		modelName := resolveModelName(rawPath)
		safeModelName := sanitizePathComponent(modelName)
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, safeModelName))
		ext := strings.ToLower(filepath.Ext(resolvedInputPath))
		if ext == "" {
			ext = ".vrm"
		}
		entries = append(entries, checkEntry{
			Index:      i + 1,
			SourcePath: resolvedInputPath,
			ModelName:  modelName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, safeModelName+ext),
		})
	}
	return entries
}

// executeBatchCheck は全モデルの検証処理を順次実行する。
func executeBatchCheck(config batchConfig, entries []checkEntry) []checkResult {
	results := make([]checkResult, 0, len(entries))
	repository := vrm.NewVrmRepository()
	usecase := minteractor.NewVrmSpecUsecase(minteractor.VrmSpecUsecaseDeps{
		Reader: repository,
		Writer: repository,
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 検証開始: model=%s\n", entry.Index, total, entry.ModelName)
		result := checkModelEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 検証成功: model=%s output=%s warnings=%d elapsed=%s\n",
				entry.Index, total, entry.ModelName, entry.OutputPath, result.WarningCount, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.StageInfo) != "" {
				fmt.Printf("[%d/%d] Inspect進捗: %s\n", entry.Index, total, result.StageInfo)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: model=%s input=%s output=%s\n", entry.Index, total, entry.ModelName, entry.SourcePath, entry.OutputPath)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: model=%s input=%s reason=%v\n", entry.Index, total, entry.ModelName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 検証失敗: model=%s reason=%v\n", entry.Index, total, entry.ModelName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// checkModelEntry は1モデル分の再読込検証を実行する。
// 読み込み、再エンコード検証、再保存、保存物の再読込、qmuntal/gltf経由の読み込みの順に比較する。
func checkModelEntry(usecase *minteractor.VrmSpecUsecase, config batchConfig, entry checkEntry) checkResult {
	result := checkResult{
		Entry:  entry,
		Status: "failed",
	}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	progressCollector := newInspectProgressCollector()
	inspected, err := usecase.Inspect(minteractor.InspectRequest{
		InputPath:        entry.SourcePath,
		VerifyRoundTrip:  true,
		Save:             true,
		Export:           true,
		OutputPath:       entry.OutputPath,
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = fmt.Errorf("Inspectに失敗しました: %w", err)
		return result
	}

	reloaded, err := usecase.LoadDocument(nil, inspected.OutputPath)
	if err != nil {
		result.Err = fmt.Errorf("保存物の再読込に失敗しました: %w", err)
		return result
	}
	if !reflect.DeepEqual(inspected.Document.Extensions.RootExtensions(), reloaded.Extensions.RootExtensions()) {
		result.Err = errors.New("保存物の拡張が元の拡張と一致しません")
		return result
	}

	_, gltfSet, err := io_gltf.Open(inspected.OutputPath)
	if err != nil {
		result.Err = fmt.Errorf("glTFライブラリでの読み込みに失敗しました: %w", err)
		return result
	}
	if !reflect.DeepEqual(gltfSet.RootExtensions(), reloaded.Extensions.RootExtensions()) {
		result.Err = errors.New("glTFライブラリ経由の拡張が一致しません")
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.WarningCount = len(inspected.Warnings)
	result.StageInfo = progressCollector.Summary()
	return result
}

// printBatchSummary は検証結果の集計を標準出力へ表示する。
func printBatchSummary(results []checkResult) {
	succeeded := 0
	failed := 0
	skipped := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		case "skipped_missing":
			skipped++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ検証サマリ: total=%d succeeded=%d failed=%d skipped_missing=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		skipped,
		dryRun,
	)
}

// resolveModelName は入力パスから拡張子を除いたモデル名を返す。
func resolveModelName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	ext := filepath.Ext(base)
	name := strings.TrimSpace(strings.TrimSuffix(base, ext))
	if name == "" {
		return "model"
	}
	return name
}

// normalizeInputPath は入力パスを実行環境向けに正規化する。
func normalizeInputPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(convertWindowsPathToWsl(path))
}

// convertWindowsPathToWsl は Linux 実行時に Windows パスを WSL パスへ変換する。
func convertWindowsPathToWsl(path string) string {
	trimmed := strings.TrimSpace(path)
	if runtime.GOOS != "linux" {
		return trimmed
	}
	if len(trimmed) < 2 || trimmed[1] != ':' {
		return trimmed
	}
	drive := strings.ToLower(trimmed[:1])
	rest := strings.ReplaceAll(trimmed[2:], "\\", "/")
	if rest == "" {
		return filepath.ToSlash(filepath.Join("/mnt", drive))
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return filepath.ToSlash(filepath.Join("/mnt", drive) + rest)
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "model"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "model"
	}
	return replaced
}

// newInspectProgressCollector は Inspect 進捗収集器を生成する。
func newInspectProgressCollector() *inspectProgressCollector {
	return &inspectProgressCollector{
		eventCounts: map[minteractor.InspectProgressEventType]int{},
	}
}

// ReportInspectProgress は Inspect の進捗イベントを収集する。
func (collector *inspectProgressCollector) ReportInspectProgress(event minteractor.InspectProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[minteractor.InspectProgressEventType]int{}
	}
	collector.eventCounts[event.Type]++
	if event.ExtensionCount > collector.extensionMax {
		collector.extensionMax = event.ExtensionCount
	}
}

// Summary は収集した Inspect 進捗の要約文字列を返す。
func (collector *inspectProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d extensionMax=%d stages=%s",
		len(collector.eventCounts),
		collector.extensionMax,
		strings.Join(types, ","),
	)
}
