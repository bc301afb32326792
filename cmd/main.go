// 指示: miu200521358
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	iovrm "github.com/miu200521358/mu_vrmspec/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/infra/config"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmspec/pkg/usecase/minteractor"
	"github.com/tidwall/pretty"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	outputPath string
	outputDir  string
	jsonOutput bool
	roundTrip  bool
	save       bool
	export     bool
}

// report はJSON出力の内容を表す。
type report struct {
	Summary        *minteractor.Summary `json:"summary"`
	Warnings       []model.VrmWarning   `json:"warnings"`
	RoundTripValid *bool                `json:"roundTripValid,omitempty"`
	OutputPath     string               `json:"outputPath,omitempty"`
	ArtifactDir    string               `json:"artifactDir,omitempty"`
}

// main はVRMの概要表示と再読込検証を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	logging.SetDefaultLogger(logging.NewLogger(errOut, cfg.Level()))

	opts, err := parseOptions(args, errOut, cfg)
	if err != nil {
		return err
	}

	repository := iovrm.NewVrmRepository()
	uc := minteractor.NewVrmSpecUsecase(minteractor.VrmSpecUsecaseDeps{
		Reader: repository,
		Writer: repository,
	})

	fmt.Fprintf(errOut, messages.LogLoadStart+"\n", opts.inputPath)
	result, err := uc.Inspect(minteractor.InspectRequest{
		InputPath:       opts.inputPath,
		VerifyRoundTrip: opts.roundTrip,
		Save:            opts.save,
		Export:          opts.export,
		OutputPath:      opts.outputPath,
		OutputDir:       opts.outputDir,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageInspectFailed, err)
	}

	if opts.jsonOutput {
		return writeJSONReport(out, result, opts.roundTrip)
	}
	writeTextReport(out, result)
	if result.RoundTripValid {
		fmt.Fprintln(errOut, messages.LogRoundTripSuccess)
	}
	if opts.save {
		fmt.Fprintf(errOut, messages.LogSaveSuccess+"\n", result.OutputPath)
	}
	if opts.export {
		fmt.Fprintf(errOut, messages.LogExportSuccess+"\n", result.ArtifactDir)
	}
	return nil
}

// parseOptions はCLI引数を解析する。環境変数の設定を既定値とする。
func parseOptions(args []string, errOut io.Writer, cfg config.AppConfig) (options, error) {
	fs := flag.NewFlagSet("mu_vrmspec", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "%s: %s\n", messages.HelpUsageTitle, messages.HelpUsage)
		fs.PrintDefaults()
	}

	in := fs.String("in", "", "入力VRMファイルパス(.vrm/.glb/.gltf)")
	out := fs.String("out", "", "保存先ファイルパス。-save/-export 時のみ使う")
	outDir := fs.String("outdir", cfg.OutputDir, "-out 未指定時に日時付きディレクトリを作る親ディレクトリ")
	jsonOutput := fs.Bool("json", cfg.Output == config.OUTPUT_FORMAT_JSON, "概要をJSONで出力する")
	roundTrip := fs.Bool("roundtrip", false, "各拡張を再エンコードして読み直せるか検証する")
	save := fs.Bool("save", false, "拡張を埋め直した文書を保存する")
	export := fs.Bool("export", false, "glTF JSONと拡張ごとのJSONを出力する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if strings.TrimSpace(*in) == "" {
		return options{}, fmt.Errorf("%s", messages.MessageInputRequired)
	}

	return options{
		inputPath:  *in,
		outputPath: *out,
		outputDir:  *outDir,
		jsonOutput: *jsonOutput,
		roundTrip:  *roundTrip,
		save:       *save,
		export:     *export,
	}, nil
}

// writeJSONReport は検査結果を整形済みJSONで出力する。
func writeJSONReport(out io.Writer, result *minteractor.InspectResult, roundTrip bool) error {
	body := report{
		Summary:     result.Summary,
		Warnings:    result.Warnings,
		OutputPath:  result.OutputPath,
		ArtifactDir: result.ArtifactDir,
	}
	if body.Warnings == nil {
		body.Warnings = []model.VrmWarning{}
	}
	if roundTrip {
		valid := result.RoundTripValid
		body.RoundTripValid = &valid
	}
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("JSON出力に失敗しました: %w", err)
	}
	_, err = out.Write(pretty.Pretty(b))
	return err
}

// writeTextReport は検査結果を一覧形式で出力する。
func writeTextReport(out io.Writer, result *minteractor.InspectResult) {
	summary := result.Summary
	line := func(label string, format string, params ...any) {
		fmt.Fprintf(out, "%s: %s\n", label, fmt.Sprintf(format, params...))
	}
	line(messages.LabelName, "%s", summary.Name)
	line(messages.LabelVersion, "%s", summary.Version)
	line(messages.LabelProfile, "%s", summary.Profile)
	if summary.Generator != "" {
		line(messages.LabelGenerator, "%s", summary.Generator)
	}
	if summary.Title != "" {
		line(messages.LabelTitle, "%s", summary.Title)
	}
	if summary.ModelVersion != "" {
		line(messages.LabelModelVersion, "%s", summary.ModelVersion)
	}
	if len(summary.Authors) > 0 {
		line(messages.LabelAuthors, "%s", strings.Join(summary.Authors, ", "))
	}
	if summary.License != "" {
		line(messages.LabelLicense, "%s", summary.License)
	}
	line(messages.LabelExtensions, "%s", strings.Join(summary.Extensions, ", "))
	line(messages.LabelNodes, "%d", summary.NodeCount)
	line(messages.LabelMaterials, "%d(%d)", summary.MaterialCount, summary.MtoonMaterialCount)
	line(messages.LabelHumanBones, "%d", summary.HumanBoneCount)
	if len(summary.MissingRequiredBones) > 0 {
		line(messages.LabelMissingRequiredBones, "%s", strings.Join(summary.MissingRequiredBones, ", "))
	}
	line(messages.LabelExpressions, "%d(%d)", summary.ExpressionCount, summary.PresetExpressionCount)
	line(messages.LabelSprings, "%d(%d)", summary.SpringCount, summary.JointCount)
	line(messages.LabelColliders, "%d(%d)", summary.ColliderCount, summary.ColliderGroupCount)
	line(messages.LabelWarnings, "%d", len(result.Warnings))
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "  %s\n", warning.String())
	}
}
