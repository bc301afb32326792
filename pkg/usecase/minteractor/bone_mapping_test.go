// 指示: miu200521358
package minteractor

import (
	"encoding/json"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
)

func decodeSetForTest(t *testing.T, root map[string]any) *vrm.ExtensionSet {
	t.Helper()
	rootExtensions := map[string]json.RawMessage{}
	for name, value := range root {
		b, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		rootExtensions[name] = b
	}
	set, err := vrm.DecodeExtensionSet(rootExtensions, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return set
}

func newVrm0ForTest() map[string]any {
	return map[string]any{
		"exporterVersion": "UniVRM-0.61",
		"meta": map[string]any{
			"title":       "Legacy",
			"author":      "someone",
			"version":     "0.1",
			"licenseName": "CC0",
		},
		"humanoid": map[string]any{"humanBones": []any{
			map[string]any{"bone": "hips", "node": 0},
			map[string]any{"bone": "leftThumbProximal", "node": 10},
			map[string]any{"bone": "leftThumbIntermediate", "node": 11},
			map[string]any{"bone": "leftThumbDistal", "node": 12},
			map[string]any{"bone": "head", "node": -1},
		}},
		"blendShapeMaster": map[string]any{"blendShapeGroups": []any{
			map[string]any{"name": "Joy", "presetName": "joy", "binds": []any{
				map[string]any{"mesh": 0, "index": 1, "weight": 100},
			}},
			map[string]any{"name": "Blink", "presetName": "blink", "isBinary": true},
			map[string]any{"name": "Surprised", "presetName": "unknown"},
		}},
		"secondaryAnimation": map[string]any{
			"boneGroups": []any{
				map[string]any{"bones": []int{3, 4}},
			},
			"colliderGroups": []any{
				map[string]any{"node": 1, "colliders": []any{
					map[string]any{"radius": 0.1},
					map[string]any{"radius": 0.2},
				}},
			},
		},
	}
}

func TestMapLegacyBoneShiftsThumb(t *testing.T) {
	cases := map[vrm0.Bone]vrm1.HumanBoneName{
		vrm0.BoneLeftThumbProximal:      vrm1.HumanBoneNameLeftThumbMetacarpal,
		vrm0.BoneLeftThumbIntermediate:  vrm1.HumanBoneNameLeftThumbProximal,
		vrm0.BoneRightThumbIntermediate: vrm1.HumanBoneNameRightThumbProximal,
		vrm0.BoneHips:                   vrm1.HumanBoneNameHips,
		vrm0.BoneLeftIndexDistal:        vrm1.HumanBoneNameLeftIndexDistal,
	}
	for bone, want := range cases {
		got, ok := MapLegacyBone(bone)
		if !ok || got != want {
			t.Fatalf("MapLegacyBone(%s) = %s, %v; want %s", bone, got, ok, want)
		}
	}
	if _, ok := MapLegacyBone(vrm0.Bone("tail")); ok {
		t.Fatalf("unknown bone should not map")
	}
}

func TestMapLegacyBoneCoversAllLegacyBones(t *testing.T) {
	for _, bone := range vrm0.Bones {
		if _, ok := MapLegacyBone(bone); !ok {
			t.Fatalf("legacy bone should map: %s", bone)
		}
	}
}

func TestUnifiedHumanBonesFallsBackToVrm0(t *testing.T) {
	set := decodeSetForTest(t, map[string]any{"VRM": newVrm0ForTest()})

	bones := UnifiedHumanBones(set)
	if len(bones) != 4 {
		t.Fatalf("bone count mismatch: got=%d bones=%v", len(bones), bones)
	}
	if node, ok := bones[vrm1.HumanBoneNameLeftThumbMetacarpal]; !ok || node.Int() != 10 {
		t.Fatalf("thumb metacarpal mismatch: %v %v", node, ok)
	}
	if _, ok := bones[vrm1.HumanBoneNameHead]; ok {
		t.Fatalf("head with negative node should be absent")
	}

	missing := MissingRequiredHumanBones(set)
	if len(missing) != len(vrm1.RequiredHumanBones)-1 {
		t.Fatalf("missing count mismatch: %v", missing)
	}
}

func TestUnifiedHumanBonesPrefersVrm1(t *testing.T) {
	set := decodeSetForTest(t, map[string]any{
		"VRM": newVrm0ForTest(),
		"VRMC_vrm": map[string]any{
			"specVersion": "1.0",
			"meta":        map[string]any{"name": "Modern", "authors": []string{"a"}, "licenseUrl": "https://vrm.dev/licenses/1.0/"},
			"humanoid": map[string]any{"humanBones": map[string]any{
				"hips": map[string]any{"node": 5},
			}},
		},
	})

	bones := UnifiedHumanBones(set)
	if len(bones) != 1 {
		t.Fatalf("vrm1 bones should win: %v", bones)
	}
	if bones[vrm1.HumanBoneNameHips].Int() != 5 {
		t.Fatalf("hips node mismatch: %v", bones[vrm1.HumanBoneNameHips])
	}
}

func TestUnifiedHumanBonesWithoutExtensions(t *testing.T) {
	if bones := UnifiedHumanBones(nil); len(bones) != 0 {
		t.Fatalf("nil set should have no bones: %v", bones)
	}
	if missing := MissingRequiredHumanBones(vrm.NewExtensionSet()); len(missing) != len(vrm1.RequiredHumanBones) {
		t.Fatalf("empty set should miss all required bones: %v", missing)
	}
}
