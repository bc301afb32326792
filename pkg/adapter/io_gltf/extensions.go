// 指示: miu200521358
// Package io_gltf はgithub.com/qmuntal/gltfの拡張レジストリにVRM関連拡張を登録する。
package io_gltf

import (
	"fmt"
	"sync"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/springbone"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
	"github.com/qmuntal/gltf"
)

var registerOnce sync.Once

// RegisterExtensions はVRM関連拡張のデコーダをgltfへ登録する。複数回呼んでも1度だけ登録する。
func RegisterExtensions() {
	registerOnce.Do(func() {
		gltf.RegisterExtension(vrm0.ExtensionName, func(data []byte) (any, error) {
			return vrm0.Decode(data)
		})
		gltf.RegisterExtension(vrm1.ExtensionName, func(data []byte) (any, error) {
			return vrm1.Decode(data)
		})
		gltf.RegisterExtension(springbone.ExtensionName, func(data []byte) (any, error) {
			return springbone.Decode(data)
		})
		gltf.RegisterExtension(mtoon.ExtensionName, func(data []byte) (any, error) {
			return mtoon.Decode(data)
		})
	})
}

// Open は拡張を登録したうえでglTF/GLBファイルを開き、VRM関連拡張を取り出す。
func Open(path string) (*gltf.Document, *vrm.ExtensionSet, error) {
	RegisterExtensions()
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, merr.NewIoParseFailed("glTFの読み込みに失敗しました: %s", err, path)
	}
	set, err := ExtractExtensions(doc)
	if err != nil {
		return nil, nil, err
	}
	logIoGltfInfo("glTF読込完了: file=%s extensions=%v", path, set.Names())
	return doc, set, nil
}

// ExtractExtensions は文書から型付きのVRM関連拡張を集める。
// 登録前に読み込まれた文書では拡張が未解釈のまま残るため、その場合はここで読み込む。
func ExtractExtensions(doc *gltf.Document) (*vrm.ExtensionSet, error) {
	set := vrm.NewExtensionSet()
	if doc == nil {
		return set, nil
	}
	set.AssetGenerator = doc.Asset.Generator
	set.ExtensionsUsed = append([]string(nil), doc.ExtensionsUsed...)

	var err error
	if set.Vrm0, err = extractExtension(doc.Extensions, vrm0.ExtensionName, vrm0.DecodeValue); err != nil {
		return nil, err
	}
	if set.Vrm1, err = extractExtension(doc.Extensions, vrm1.ExtensionName, vrm1.DecodeValue); err != nil {
		return nil, err
	}
	if set.SpringBone, err = extractExtension(doc.Extensions, springbone.ExtensionName, springbone.DecodeValue); err != nil {
		return nil, err
	}
	for i, material := range doc.Materials {
		if material == nil {
			continue
		}
		schema, err := extractExtension(material.Extensions, mtoon.ExtensionName, mtoon.DecodeValue)
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		if schema != nil {
			set.Mtoon[i] = schema
		}
	}
	return set, nil
}

// extractExtension は登録済みデコーダの結果をそのまま使い、未解釈の値は読み込み直す。
func extractExtension[T any](
	extensions gltf.Extensions,
	name string,
	decode func(any) (*T, error),
) (*T, error) {
	value, ok := extensions[name]
	if !ok || value == nil {
		return nil, nil
	}
	if typed, ok := value.(*T); ok {
		return typed, nil
	}
	return decode(value)
}

// EmbedExtensions はExtensionSetの内容を文書のextensionsへ書き戻す。
// nilの拡張は文書から取り除き、extensionsUsedも合わせて更新する。
func EmbedExtensions(doc *gltf.Document, set *vrm.ExtensionSet) {
	if doc == nil || set == nil {
		return
	}
	if doc.Extensions == nil {
		doc.Extensions = gltf.Extensions{}
	}
	embedExtension(doc, doc.Extensions, vrm0.ExtensionName, set.Vrm0)
	embedExtension(doc, doc.Extensions, vrm1.ExtensionName, set.Vrm1)
	embedExtension(doc, doc.Extensions, springbone.ExtensionName, set.SpringBone)
	for i, material := range doc.Materials {
		if material == nil {
			continue
		}
		if material.Extensions == nil {
			material.Extensions = gltf.Extensions{}
		}
		embedExtension(doc, material.Extensions, mtoon.ExtensionName, set.Mtoon[i])
	}
}

func embedExtension[T any](doc *gltf.Document, extensions gltf.Extensions, name string, value *T) {
	if value == nil {
		delete(extensions, name)
		return
	}
	extensions[name] = value
	for _, used := range doc.ExtensionsUsed {
		if used == name {
			return
		}
	}
	doc.ExtensionsUsed = append(doc.ExtensionsUsed, name)
}

// logIoGltfInfo はglTF入出力のINFOログを出力する。
func logIoGltfInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}
