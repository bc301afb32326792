// 指示: miu200521358
package vrm

// VrmDocument は読み込んだglTF文書と、そこから取り出したVRM関連拡張を表す。
type VrmDocument struct {
	Path string
	Name string
	// JSON はglTFのJSON部分。保存時はここへ拡張を埋め込み直す。
	JSON []byte
	// Bin はGLBのBINチャンク。.gltfの場合はnil。
	Bin           []byte
	IsBinary      bool
	NodeNames     []string
	NodeParents   []int
	MaterialNames []string
	Extensions    *ExtensionSet
}

// NodeName はnode名を返す。範囲外の場合は空文字。
func (d *VrmDocument) NodeName(index int) string {
	if d == nil || index < 0 || index >= len(d.NodeNames) {
		return ""
	}
	return d.NodeNames[index]
}
