// 指示: miu200521358
package io_gltf

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/springbone"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
	"github.com/qmuntal/gltf"
)

func newDocumentForTest() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "VRoid Studio-1.0"
	doc.Materials = []*gltf.Material{
		{Name: "Body"},
		{Name: "Hair", Extensions: gltf.Extensions{
			mtoon.ExtensionName: json.RawMessage(`{"specVersion":"1.0","outlineWidthMode":"worldCoordinates"}`),
		}},
	}
	doc.Extensions = gltf.Extensions{
		vrm1.ExtensionName: json.RawMessage(`{
			"specVersion": "1.0",
			"meta":        {"name": "Sample", "authors": ["author"], "licenseUrl": "https://vrm.dev/licenses/1.0/"},
			"humanoid":    {"humanBones": {"hips": {"node": 0}}}
		}`),
		springbone.ExtensionName: json.RawMessage(`{"specVersion": "1.0", "springs": [{"joints": [{"node": 0}]}]}`),
	}
	doc.ExtensionsUsed = []string{vrm1.ExtensionName, springbone.ExtensionName, mtoon.ExtensionName}
	return doc
}

func TestExtractExtensionsFromRawValues(t *testing.T) {
	set, err := ExtractExtensions(newDocumentForTest())
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if set.Vrm1 == nil || set.Vrm1.Meta.Name != "Sample" {
		t.Fatalf("vrm1 mismatch: %+v", set.Vrm1)
	}
	if set.SpringBone == nil || len(set.SpringBone.Springs) != 1 {
		t.Fatalf("springBone mismatch: %+v", set.SpringBone)
	}
	if len(set.Mtoon) != 1 || *set.Mtoon[1].OutlineWidthMode != mtoon.OutlineWidthModeWorldCoordinates {
		t.Fatalf("mtoon mismatch: %+v", set.Mtoon)
	}
	if set.Version() != vrm.VRM_VERSION_1 || set.Profile() != vrm.VRM_PROFILE_VROID {
		t.Fatalf("version/profile mismatch: %s %s", set.Version(), set.Profile())
	}
}

func TestOpenDecodesRegisteredExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.gltf")
	if err := gltf.Save(newDocumentForTest(), path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	doc, set, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, ok := doc.Extensions[vrm1.ExtensionName].(*vrm1.Schema); !ok {
		t.Fatalf("registered decoder should yield typed value: %T", doc.Extensions[vrm1.ExtensionName])
	}
	if _, ok := doc.Materials[1].Extensions[mtoon.ExtensionName].(*mtoon.Schema); !ok {
		t.Fatalf("material extension should be typed: %T", doc.Materials[1].Extensions[mtoon.ExtensionName])
	}
	if set.Vrm1 != doc.Extensions[vrm1.ExtensionName] {
		t.Fatalf("typed value should be reused")
	}
}

func TestOpenRejectsStructuralErrors(t *testing.T) {
	doc := newDocumentForTest()
	doc.Extensions[springbone.ExtensionName] = json.RawMessage(`{"springs": []}`)
	path := filepath.Join(t.TempDir(), "broken.gltf")
	if err := gltf.Save(doc, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, _, err := Open(path); err == nil {
		t.Fatalf("missing specVersion should fail")
	}
}

func TestEmbedExtensions(t *testing.T) {
	doc := newDocumentForTest()
	set, err := ExtractExtensions(doc)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	set.SpringBone = nil
	set.Mtoon[0] = &mtoon.Schema{SpecVersion: "1.0"}
	set.Vrm1.Meta.Name = "Renamed"

	EmbedExtensions(doc, set)
	if _, ok := doc.Extensions[springbone.ExtensionName]; ok {
		t.Fatalf("nil extension should be removed")
	}
	if doc.Materials[0].Extensions[mtoon.ExtensionName] != set.Mtoon[0] {
		t.Fatalf("material extension should be embedded")
	}

	path := filepath.Join(t.TempDir(), "embedded.gltf")
	if err := gltf.Save(doc, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	_, reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if reloaded.Vrm1.Meta.Name != "Renamed" || reloaded.SpringBone != nil || len(reloaded.Mtoon) != 2 {
		t.Fatalf("reloaded mismatch: %+v", reloaded)
	}
}
