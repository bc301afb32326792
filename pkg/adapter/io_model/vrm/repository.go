// 指示: miu200521358
package vrm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/springbone"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const fileMode = 0o644

// rootExtensionNames はルートのextensionsに置かれるVRM関連拡張。
var rootExtensionNames = []string{vrm0.ExtensionName, vrm1.ExtensionName, springbone.ExtensionName}

// LoadProgressEventType はVRM読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeFileReadComplete はファイル読込完了イベントを表す。
	LoadProgressEventTypeFileReadComplete LoadProgressEventType = "file_read_complete"
	// LoadProgressEventTypeJsonParsed はJSON解析完了イベントを表す。
	LoadProgressEventTypeJsonParsed LoadProgressEventType = "json_parsed"
	// LoadProgressEventTypeExtensionsDecoded は拡張の型付き読込完了イベントを表す。
	LoadProgressEventTypeExtensionsDecoded LoadProgressEventType = "extensions_decoded"
	// LoadProgressEventTypeCompleted はVRM読込完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// LoadProgressEvent はVRM読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type           LoadProgressEventType
	FileSizeBytes  int
	NodeCount      int
	MaterialCount  int
	ExtensionNames []string
}

// VrmRepository はVRM/glTFの読み書きを行う。
type VrmRepository struct {
	loadProgressReporter func(LoadProgressEvent)
}

// NewVrmRepository はVrmRepositoryを生成する。
func NewVrmRepository() *VrmRepository {
	return &VrmRepository{}
}

// SetLoadProgressReporter はVRM読込進捗受信コールバックを設定する。
func (r *VrmRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *VrmRepository) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vrm", ".glb", ".gltf":
		return true
	default:
		return false
	}
}

// InferName はパスから表示名を推定する。
func (r *VrmRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はVRM/GLB/glTFを読み込み、含まれるVRM関連拡張を型付きで返す。
func (r *VrmRepository) Load(path string) (*vrm.VrmDocument, error) {
	if !r.CanLoad(path) {
		return nil, merr.NewIoExtInvalid(path, nil)
	}
	loadTargetName := filepath.Base(path)
	logVrmInfo("VRM読込開始: file=%s", loadTargetName)

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merr.NewIoFileNotFound(path, err)
		}
		return nil, merr.NewIoParseFailed("VRMファイルの読み取りに失敗しました", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeFileReadComplete,
		FileSizeBytes: len(b),
	})
	logVrmDebug("VRM読込ステップ: ファイル読み取り完了 bytes=%d", len(b))

	doc := &vrm.VrmDocument{Path: path, Name: r.InferName(path)}
	if isGLB(b) {
		doc.IsBinary = true
		doc.JSON, doc.Bin, err = parseGLBChunks(b)
		if err != nil {
			return nil, err
		}
		logVrmDebug("VRM読込ステップ: GLBチャンク解析完了 jsonBytes=%d binBytes=%d", len(doc.JSON), len(doc.Bin))
	} else {
		doc.JSON = b
	}
	if !gjson.ValidBytes(doc.JSON) {
		return nil, merr.NewIoParseFailed("glTF JSONの解析に失敗しました: %s", nil, loadTargetName)
	}

	root := gjson.ParseBytes(doc.JSON)
	if err := readNodes(root, doc); err != nil {
		return nil, err
	}
	rootExtensions, materialExtensions := readExtensions(root, doc)
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeJsonParsed,
		FileSizeBytes: len(b),
		NodeCount:     len(doc.NodeNames),
		MaterialCount: len(doc.MaterialNames),
	})
	logVrmDebug(
		"VRM読込ステップ: JSON解析完了 nodes=%d materials=%d mtoon=%d",
		len(doc.NodeNames),
		len(doc.MaterialNames),
		len(materialExtensions),
	)

	set, err := vrm.DecodeExtensionSet(rootExtensions, materialExtensions)
	if err != nil {
		return nil, err
	}
	set.AssetGenerator = root.Get("asset.generator").String()
	for _, used := range root.Get("extensionsUsed").Array() {
		set.ExtensionsUsed = append(set.ExtensionsUsed, used.String())
	}
	doc.Extensions = set
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeExtensionsDecoded,
		FileSizeBytes:  len(b),
		NodeCount:      len(doc.NodeNames),
		MaterialCount:  len(doc.MaterialNames),
		ExtensionNames: set.Names(),
	})

	if set.Version() == "" {
		logVrmWarn("VRM拡張が見つかりません: file=%s", loadTargetName)
	}
	for _, warning := range set.Warnings() {
		logVrmDebug("VRM警告: %s", warning)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:           LoadProgressEventTypeCompleted,
		FileSizeBytes:  len(b),
		NodeCount:      len(doc.NodeNames),
		MaterialCount:  len(doc.MaterialNames),
		ExtensionNames: set.Names(),
	})
	logVrmInfo(
		"VRM読込完了: file=%s version=%s profile=%s extensions=%v",
		loadTargetName,
		set.Version(),
		set.Profile(),
		set.Names(),
	)
	return doc, nil
}

// Save は文書のExtensionsをJSONへ埋め込み直して保存する。
// .vrm/.glbはGLB、.gltfはJSONとして書き出す。
func (r *VrmRepository) Save(path string, doc *vrm.VrmDocument) error {
	if !r.CanLoad(path) {
		return merr.NewIoExtInvalid(path, nil)
	}
	if doc == nil {
		return merr.NewIoParseFailed("保存対象の文書がありません", nil)
	}
	jsonChunk, err := EmbedExtensions(doc.JSON, doc.Extensions)
	if err != nil {
		return err
	}

	var out []byte
	if strings.EqualFold(filepath.Ext(path), ".gltf") {
		if len(doc.Bin) > 0 {
			logVrmWarn("glTF保存ではBINチャンクを出力しません: file=%s", filepath.Base(path))
		}
		out = jsonChunk
	} else {
		out = buildGLB(jsonChunk, doc.Bin)
	}
	if err := os.WriteFile(path, out, fileMode); err != nil {
		return merr.NewIoParseFailed("VRMファイルの書き込みに失敗しました: %s", err, path)
	}
	logVrmInfo("VRM保存完了: file=%s bytes=%d", filepath.Base(path), len(out))
	return nil
}

// EmbedExtensions はglTF JSONのVRM関連拡張をExtensionSetの内容で置き換える。
// nilの拡張は取り除き、extensionsUsedも合わせて更新する。それ以外のJSONはそのまま残す。
func EmbedExtensions(jsonChunk []byte, set *vrm.ExtensionSet) ([]byte, error) {
	if set == nil {
		return jsonChunk, nil
	}
	out := jsonChunk
	var err error
	used := map[string]bool{}
	encoded := set.RootExtensions()
	for _, name := range rootExtensionNames {
		raw, ok := encoded[name]
		if !ok {
			if out, err = sjson.DeleteBytes(out, "extensions."+name); err != nil {
				return nil, merr.NewIoParseFailed("%s拡張の削除に失敗しました", err, name)
			}
			continue
		}
		if out, err = sjson.SetRawBytes(out, "extensions."+name, raw); err != nil {
			return nil, merr.NewIoParseFailed("%s拡張の埋め込みに失敗しました", err, name)
		}
		used[name] = true
	}

	materialCount := int(gjson.GetBytes(out, "materials.#").Int())
	for i := range materialCount {
		path := fmt.Sprintf("materials.%d.extensions.%s", i, mtoon.ExtensionName)
		schema, ok := set.Mtoon[i]
		if !ok || schema == nil {
			if out, err = sjson.DeleteBytes(out, path); err != nil {
				return nil, merr.NewIoParseFailed("materials[%d]のMToon拡張の削除に失敗しました", err, i)
			}
			continue
		}
		if out, err = sjson.SetRawBytes(out, path, mtoon.Encode(schema)); err != nil {
			return nil, merr.NewIoParseFailed("materials[%d]のMToon拡張の埋め込みに失敗しました", err, i)
		}
		used[mtoon.ExtensionName] = true
	}
	for index := range set.Mtoon {
		if index < 0 || index >= materialCount {
			logVrmWarn("存在しないマテリアルのMToon拡張は埋め込みません: materials[%d] (件数=%d)", index, materialCount)
		}
	}

	// glTFではextensionsUsedは1件以上必要なため、空になる場合はキーごと取り除く。
	extensionsUsed := updateExtensionsUsed(gjson.GetBytes(out, "extensionsUsed").Array(), used)
	if len(extensionsUsed) == 0 {
		if out, err = sjson.DeleteBytes(out, "extensionsUsed"); err != nil {
			return nil, merr.NewIoParseFailed("extensionsUsedの削除に失敗しました", err)
		}
		return out, nil
	}
	if out, err = sjson.SetBytes(out, "extensionsUsed", extensionsUsed); err != nil {
		return nil, merr.NewIoParseFailed("extensionsUsedの更新に失敗しました", err)
	}
	return out, nil
}

// updateExtensionsUsed はVRM関連以外の宣言を保ったまま、使用中の拡張名を宣言する。
func updateExtensionsUsed(current []gjson.Result, used map[string]bool) []string {
	managed := append(slices.Clone(rootExtensionNames), mtoon.ExtensionName)
	result := []string{}
	for _, value := range current {
		name := value.String()
		if slices.Contains(managed, name) && !used[name] {
			continue
		}
		if !slices.Contains(result, name) {
			result = append(result, name)
		}
	}
	for _, name := range managed {
		if used[name] && !slices.Contains(result, name) {
			result = append(result, name)
		}
	}
	return result
}

// readNodes はnode名と親子関係を読み込む。
func readNodes(root gjson.Result, doc *vrm.VrmDocument) error {
	nodes := root.Get("nodes").Array()
	doc.NodeNames = make([]string, len(nodes))
	children := make([][]int, len(nodes))
	for i, node := range nodes {
		doc.NodeNames[i] = node.Get("name").String()
		for _, child := range node.Get("children").Array() {
			children[i] = append(children[i], int(child.Int()))
		}
	}
	parents, err := buildNodeParentIndexes(children)
	if err != nil {
		return err
	}
	doc.NodeParents = parents
	return nil
}

// readExtensions はルートとマテリアルからVRM関連拡張の生JSONを取り出す。nullは未指定として扱う。
func readExtensions(root gjson.Result, doc *vrm.VrmDocument) (map[string]json.RawMessage, map[int]json.RawMessage) {
	rootExtensions := map[string]json.RawMessage{}
	for _, name := range rootExtensionNames {
		value := root.Get("extensions." + name)
		if value.Exists() && value.Type != gjson.Null {
			rootExtensions[name] = json.RawMessage(value.Raw)
		}
	}

	materialExtensions := map[int]json.RawMessage{}
	materials := root.Get("materials").Array()
	doc.MaterialNames = make([]string, len(materials))
	for i, material := range materials {
		doc.MaterialNames[i] = material.Get("name").String()
		value := material.Get("extensions." + mtoon.ExtensionName)
		if value.Exists() && value.Type != gjson.Null {
			materialExtensions[i] = json.RawMessage(value.Raw)
		}
	}
	return rootExtensions, materialExtensions
}

// buildNodeParentIndexes はnodeごとの子一覧から親インデックス配列を生成する。親がない場合は-1。
func buildNodeParentIndexes(children [][]int) ([]int, error) {
	parentIndexes := make([]int, len(children))
	for i := range parentIndexes {
		parentIndexes[i] = -1
	}
	for parentIndex, childIndexes := range children {
		for _, childIndex := range childIndexes {
			if childIndex < 0 || childIndex >= len(children) {
				return nil, merr.NewIoParseFailed("node.children のindexが不正です: %d", nil, childIndex)
			}
			if parentIndexes[childIndex] >= 0 && parentIndexes[childIndex] != parentIndex {
				return nil, merr.NewIoParseFailed("nodeの親が複数あります: %d", nil, childIndex)
			}
			parentIndexes[childIndex] = parentIndex
		}
	}
	return parentIndexes, nil
}

// reportLoadProgress は読込進捗イベントを通知する。
func (r *VrmRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// logVrmInfo はVRM入出力のINFOログを出力する。
func logVrmInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logVrmDebug はVRM入出力のデバッグログを出力する。
func logVrmDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

// logVrmWarn はVRM入出力の警告ログを出力する。
func logVrmWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}
