// 指示: miu200521358
package vrm

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
)

func rawForTest(t *testing.T, value any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return b
}

func newVrm1RootForTest(t *testing.T) map[string]json.RawMessage {
	t.Helper()
	humanBones := map[string]any{}
	for _, name := range []string{
		"hips", "spine", "head",
		"leftUpperLeg", "leftLowerLeg", "leftFoot",
		"rightUpperLeg", "rightLowerLeg", "rightFoot",
		"leftUpperArm", "leftLowerArm", "leftHand",
		"rightUpperArm", "rightLowerArm",
	} {
		humanBones[name] = map[string]any{"node": len(humanBones)}
	}
	return map[string]json.RawMessage{
		"VRMC_vrm": rawForTest(t, map[string]any{
			"specVersion": "1.0",
			"meta":        map[string]any{"name": "Sample", "authors": []string{"a"}, "licenseUrl": "https://vrm.dev/licenses/1.0/"},
			"humanoid":    map[string]any{"humanBones": humanBones},
		}),
		"VRMC_springBone": rawForTest(t, map[string]any{
			"specVersion": "1.0",
			"colliders":   []any{map[string]any{"node": 0, "shape": map[string]any{}}},
		}),
		"VRM": rawForTest(t, map[string]any{
			"exporterVersion": "VRoidStudio-1.0",
			"blendShapeMaster": map[string]any{"blendShapeGroups": []any{
				map[string]any{"name": "Joy", "presetName": "joy"},
				map[string]any{"name": "Custom", "presetName": "surprised"},
			}},
		}),
	}
}

func TestDecodeExtensionSetPrefersVrm1(t *testing.T) {
	set, err := DecodeExtensionSet(newVrm1RootForTest(t), map[int]json.RawMessage{
		2: json.RawMessage(`{"specVersion":"1.0","shadingToonyFactor":0.9}`),
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if set.Version() != VRM_VERSION_1 {
		t.Fatalf("version mismatch: %s", set.Version())
	}
	if set.Profile() != VRM_PROFILE_VROID {
		t.Fatalf("profile mismatch: %s", set.Profile())
	}
	if set.Vrm0 == nil || set.Vrm1 == nil || set.SpringBone == nil {
		t.Fatalf("all root extensions should be decoded: %+v", set)
	}
	if !reflect.DeepEqual(set.MtoonMaterialIndexes(), []int{2}) {
		t.Fatalf("mtoon indexes mismatch: %v", set.MtoonMaterialIndexes())
	}
	want := []string{"VRM", "VRMC_materials_mtoon", "VRMC_springBone", "VRMC_vrm"}
	if !reflect.DeepEqual(set.Names(), want) {
		t.Fatalf("names mismatch: %v", set.Names())
	}
}

func TestExtensionSetWarnings(t *testing.T) {
	set, err := DecodeExtensionSet(newVrm1RootForTest(t), nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	warnings := set.Warnings()
	counts := model.CountVrmWarnings(warnings)
	if counts[model.VrmWarningRequiredBoneMissing] != 1 {
		t.Fatalf("required bone warning mismatch: %v", warnings)
	}
	if counts[model.VrmWarningLegacyPresetUnknown] != 1 {
		t.Fatalf("legacy preset warning mismatch: %v", warnings)
	}
	if counts[model.VrmWarningColliderShapeEmpty] != 1 {
		t.Fatalf("collider warning mismatch: %v", warnings)
	}
	for _, warning := range warnings {
		if warning.ID == model.VrmWarningRequiredBoneMissing && warning.Path != "VRMC_vrm.humanoid.humanBones.rightHand" {
			t.Fatalf("required bone path mismatch: %s", warning.Path)
		}
		if warning.ID == model.VrmWarningColliderShapeEmpty && warning.Path != "VRMC_springBone.colliders[0].shape" {
			t.Fatalf("collider path mismatch: %s", warning.Path)
		}
	}
}

func TestVersionFromExtensionsUsed(t *testing.T) {
	set := NewExtensionSet()
	if set.Version() != "" {
		t.Fatalf("empty set should have no version: %s", set.Version())
	}
	set.ExtensionsUsed = []string{"vrm"}
	if set.Version() != VRM_VERSION_0 {
		t.Fatalf("version mismatch: %s", set.Version())
	}
	set.AssetGenerator = "UniGLTF-2.0"
	if set.Profile() != VRM_PROFILE_STANDARD {
		t.Fatalf("profile mismatch: %s", set.Profile())
	}
}

func TestDecodeExtensionSetReportsExtensionName(t *testing.T) {
	_, err := DecodeExtensionSet(map[string]json.RawMessage{
		"VRMC_springBone": json.RawMessage(`{"springs": []}`),
	}, nil)
	if !merr.IsStructuralDecodeError(err) {
		t.Fatalf("expected structural decode error, got %v", err)
	}
	if !strings.Contains(err.Error(), "VRMC_springBone") {
		t.Fatalf("error should name the extension: %v", err)
	}

	_, err = DecodeExtensionSet(nil, map[int]json.RawMessage{3: json.RawMessage(`[]`)})
	if !merr.IsStructuralDecodeError(err) || !strings.Contains(err.Error(), "materials[3]") {
		t.Fatalf("mtoon error mismatch: %v", err)
	}
}

func TestRootExtensionsRoundTrip(t *testing.T) {
	set, err := DecodeExtensionSet(newVrm1RootForTest(t), nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	decoded, err := DecodeExtensionSet(set.RootExtensions(), nil)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(set, decoded) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", decoded, set)
	}
}

func TestExtensionSetCloneIsDeep(t *testing.T) {
	set, err := DecodeExtensionSet(newVrm1RootForTest(t), map[int]json.RawMessage{
		0: json.RawMessage(`{"specVersion":"1.0"}`),
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	cloned := set.Clone()
	cloned.Vrm1.Meta.Name = "changed"
	cloned.Mtoon[0].SpecVersion = "2.0"
	if set.Vrm1.Meta.Name != "Sample" || set.Mtoon[0].SpecVersion != "1.0" {
		t.Fatalf("clone shares memory with source")
	}
}
