// 指示: miu200521358
package vrm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
	"github.com/tidwall/pretty"
)

const exportDirMode = 0o755

// ArtifactExportResult はVRM由来の補助出力結果を表す。
type ArtifactExportResult struct {
	GltfPath string
	BinPath  string
	// ExtensionPaths は拡張名(マテリアル拡張は "materials[i].名前")ごとの出力先。
	ExtensionPaths map[string]string
}

// ExportArtifacts は読み込んだ文書のglTF JSONとBIN、VRM関連拡張ごとの整形済みJSONを出力する。
// 拡張は型付きの値から再エンコードしたものを書き出す。
func ExportArtifacts(doc *vrm.VrmDocument, outDir string) (*ArtifactExportResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("出力対象の文書がありません")
	}
	if strings.TrimSpace(outDir) == "" {
		return nil, fmt.Errorf("出力先ディレクトリが未指定です")
	}
	if err := os.MkdirAll(outDir, exportDirMode); err != nil {
		return nil, fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}

	baseName := strings.TrimSpace(doc.Name)
	if baseName == "" {
		baseName = "model"
	}
	jsonChunk, err := EmbedExtensions(doc.JSON, doc.Extensions)
	if err != nil {
		return nil, err
	}

	result := &ArtifactExportResult{ExtensionPaths: map[string]string{}}
	result.GltfPath = filepath.Join(outDir, baseName+".gltf")
	if err := os.WriteFile(result.GltfPath, pretty.Pretty(jsonChunk), fileMode); err != nil {
		return nil, fmt.Errorf("glTF JSON の保存に失敗しました: %w", err)
	}
	if len(doc.Bin) > 0 {
		result.BinPath = filepath.Join(outDir, baseName+".bin")
		if err := os.WriteFile(result.BinPath, doc.Bin, fileMode); err != nil {
			return nil, fmt.Errorf("glTF BIN の保存に失敗しました: %w", err)
		}
	}

	for name, raw := range doc.Extensions.RootExtensions() {
		path := filepath.Join(outDir, fmt.Sprintf("%s.%s.json", baseName, name))
		if err := os.WriteFile(path, pretty.Pretty(raw), fileMode); err != nil {
			return nil, fmt.Errorf("%s拡張の保存に失敗しました: %w", name, err)
		}
		result.ExtensionPaths[name] = path
	}
	for _, index := range doc.Extensions.MtoonMaterialIndexes() {
		key := fmt.Sprintf("materials[%d].%s", index, mtoon.ExtensionName)
		path := filepath.Join(outDir, fmt.Sprintf("%s.material%d.%s.json", baseName, index, mtoon.ExtensionName))
		if err := os.WriteFile(path, pretty.Pretty(mtoon.Encode(doc.Extensions.Mtoon[index])), fileMode); err != nil {
			return nil, fmt.Errorf("%s の保存に失敗しました: %w", key, err)
		}
		result.ExtensionPaths[key] = path
	}
	logVrmInfo("VRM補助出力完了: dir=%s files=%d", outDir, len(result.ExtensionPaths)+1)
	return result, nil
}
