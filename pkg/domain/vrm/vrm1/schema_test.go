// 指示: miu200521358
package vrm1

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
)

func ptr[T any](v T) *T {
	return &v
}

func newMinimalVrm1ForTest() map[string]any {
	return map[string]any{
		"specVersion": "1.0",
		"humanoid": map[string]any{
			"humanBones": map[string]any{},
		},
		"meta": map[string]any{
			"name":       "Sample",
			"authors":    []string{"author"},
			"licenseUrl": "https://vrm.dev/licenses/1.0/",
		},
	}
}

func newVrm1ExtensionForTest() map[string]any {
	return map[string]any{
		"specVersion": "1.0",
		"humanoid": map[string]any{
			"humanBones": map[string]any{
				"hips":  map[string]any{"node": 1},
				"spine": map[string]any{"node": 2, "extras": map[string]any{"note": "<spine>"}},
				"head":  map[string]any{"node": 0},
				"jaw":   nil,
				"chest": map[string]any{"node": -1},
			},
		},
		"meta": map[string]any{
			"name":                "Sample",
			"version":             "1.0",
			"authors":             []string{"author1", "author2"},
			"licenseUrl":          "https://vrm.dev/licenses/1.0/",
			"avatarPermission":    "onlySeparatelyLicensedPerson",
			"commercialUsage":     "personalNonProfit",
			"creditNotation":      "required",
			"modification":        "allowModification",
			"allowRedistribution": false,
			"references":          []string{},
			"thumbnailImage":      -1,
		},
		"expressions": map[string]any{
			"preset": map[string]any{
				"happy": map[string]any{
					"morphTargetBinds": []any{
						map[string]any{"node": 3, "index": 0, "weight": 1.0},
					},
					"overrideBlink": "block",
					"isBinary":      false,
				},
				"aa": map[string]any{
					"materialColorBinds": []any{
						map[string]any{"material": 2, "type": "shadeColor", "targetValue": []float64{1, 0, 0, 1}},
					},
					"textureTransformBinds": []any{
						map[string]any{"material": 2, "offset": []float64{0.5, 0}},
					},
				},
			},
			"custom": map[string]any{
				"smug": map[string]any{"overrideMouth": "blend"},
			},
		},
		"firstPerson": map[string]any{
			"meshAnnotations": []any{
				map[string]any{"node": 4, "type": "thirdPersonOnly"},
				map[string]any{"node": -1, "type": "auto"},
			},
		},
		"lookAt": map[string]any{
			"offsetFromHeadBone":      []float64{0, 0.06, 0},
			"type":                    "bone",
			"rangeMapHorizontalInner": map[string]any{"inputMaxValue": 90, "outputScale": 10},
		},
		"extensions": map[string]any{
			"VENDOR_ext": map[string]any{"flag": true, "empty": nil},
		},
		"extras": map[string]any{"tool": "exporter"},
	}
}

func TestDecodeMinimalDocument(t *testing.T) {
	schema, err := DecodeValue(newMinimalVrm1ForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if schema.SpecVersion != "1.0" || schema.Meta.Name != "Sample" {
		t.Fatalf("root mismatch: %+v", schema)
	}
	if schema.Expressions != nil || schema.LookAt != nil || schema.FirstPerson != nil {
		t.Fatalf("optional fields should be absent: %+v", schema)
	}
	if schema.Humanoid.HumanBones == nil || len(schema.Humanoid.HumanBones) != 0 {
		t.Fatalf("humanBones should be empty map: %#v", schema.Humanoid.HumanBones)
	}

	want := `{"humanoid":{"humanBones":{}},"meta":{"authors":["author"],"licenseUrl":"https://vrm.dev/licenses/1.0/","name":"Sample"},"specVersion":"1.0"}`
	if got := string(Encode(schema)); got != want {
		t.Fatalf("encode mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestDecodeRequiresRootFields(t *testing.T) {
	for _, field := range []string{"humanoid", "meta", "specVersion"} {
		missing := newMinimalVrm1ForTest()
		delete(missing, field)
		if _, err := DecodeValue(missing); merr.ExtractErrorID(err) != merr.StructuralDecodeErrorID {
			t.Fatalf("missing %s should fail with structural decode error: %v", field, err)
		}

		nulled := newMinimalVrm1ForTest()
		nulled[field] = nil
		if _, err := DecodeValue(nulled); merr.ExtractErrorID(err) != merr.StructuralDecodeErrorID {
			t.Fatalf("null %s should fail with structural decode error: %v", field, err)
		}
	}
}

func TestDecodeStructuralErrors(t *testing.T) {
	cases := map[string]func(doc map[string]any){
		"lookAt type invalid": func(doc map[string]any) {
			doc["lookAt"] = map[string]any{"type": "invalid"}
		},
		"meta authors empty": func(doc map[string]any) {
			doc["meta"].(map[string]any)["authors"] = []string{}
		},
		"meta name missing": func(doc map[string]any) {
			delete(doc["meta"].(map[string]any), "name")
		},
		"meta commercialUsage unknown": func(doc map[string]any) {
			doc["meta"].(map[string]any)["commercialUsage"] = "free"
		},
		"humanBones missing": func(doc map[string]any) {
			doc["humanoid"] = map[string]any{}
		},
		"humanBones unknown bone": func(doc map[string]any) {
			doc["humanoid"] = map[string]any{"humanBones": map[string]any{"tail": map[string]any{"node": 1}}}
		},
		"preset unknown name": func(doc map[string]any) {
			doc["expressions"] = map[string]any{"preset": map[string]any{"joy": map[string]any{}}}
		},
		"morphTargetBind weight missing": func(doc map[string]any) {
			doc["expressions"] = map[string]any{"custom": map[string]any{"x": map[string]any{
				"morphTargetBinds": []any{map[string]any{"node": 0, "index": 0}},
			}}}
		},
		"materialColorBind short targetValue": func(doc map[string]any) {
			doc["expressions"] = map[string]any{"custom": map[string]any{"x": map[string]any{
				"materialColorBinds": []any{map[string]any{"material": 0, "type": "color", "targetValue": []float64{1, 1, 1}}},
			}}}
		},
		"meshAnnotation type missing": func(doc map[string]any) {
			doc["firstPerson"] = map[string]any{"meshAnnotations": []any{map[string]any{"node": 0}}}
		},
		"override unknown": func(doc map[string]any) {
			doc["expressions"] = map[string]any{"custom": map[string]any{"x": map[string]any{"overrideBlink": "mute"}}}
		},
		"specVersion number": func(doc map[string]any) {
			doc["specVersion"] = 1.0
		},
	}
	for name, mutate := range cases {
		doc := newMinimalVrm1ForTest()
		mutate(doc)
		_, err := DecodeValue(doc)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !merr.IsStructuralDecodeError(err) {
			t.Fatalf("%s: expected structural decode error, got %v", name, err)
		}
	}
}

func TestDecodeSample(t *testing.T) {
	schema, err := DecodeValue(newVrm1ExtensionForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	bones := schema.Humanoid.HumanBones
	if len(bones) != 5 {
		t.Fatalf("humanBones count mismatch: %d", len(bones))
	}
	if bone, ok := bones[HumanBoneNameJaw]; !ok || bone != nil {
		t.Fatalf("null jaw should be kept as nil entry: %v %v", bone, ok)
	}
	if bones[HumanBoneNameChest].Node.Valid {
		t.Fatalf("chest node -1 should be absent")
	}
	if string(bones[HumanBoneNameSpine].Extras) != `{"note":"<spine>"}` {
		t.Fatalf("spine extras mismatch: %s", bones[HumanBoneNameSpine].Extras)
	}

	meta := schema.Meta
	if !reflect.DeepEqual(meta.Authors, []string{"author1", "author2"}) {
		t.Fatalf("authors mismatch: %v", meta.Authors)
	}
	if *meta.AvatarPermission != AvatarPermissionTypeOnlySeparatelyLicensedPerson {
		t.Fatalf("avatarPermission mismatch: %s", *meta.AvatarPermission)
	}
	if *meta.Modification != ModificationTypeAllowModification || *meta.CreditNotation != CreditNotationTypeRequired {
		t.Fatalf("meta enum mismatch: %+v", meta)
	}
	if meta.AllowRedistribution == nil || *meta.AllowRedistribution {
		t.Fatalf("allowRedistribution should be present false")
	}
	if meta.References == nil || len(meta.References) != 0 {
		t.Fatalf("empty references should be kept: %#v", meta.References)
	}
	if meta.ThumbnailImage.Valid {
		t.Fatalf("thumbnailImage -1 should be absent")
	}

	happy := schema.Expressions.Preset[ExpressionPresetNameHappy]
	if *happy.OverrideBlink != ExpressionOverrideTypeBlock {
		t.Fatalf("overrideBlink mismatch: %s", *happy.OverrideBlink)
	}
	if happy.MorphTargetBinds[0].Node != gltfref.NewIndex[gltfref.Node](3) || happy.MorphTargetBinds[0].Weight != 1 {
		t.Fatalf("morph bind mismatch: %+v", happy.MorphTargetBinds[0])
	}
	aa := schema.Expressions.Preset[ExpressionPresetNameAa]
	if aa.MaterialColorBinds[0].Type != MaterialColorTypeShadeColor {
		t.Fatalf("material color type mismatch: %s", aa.MaterialColorBinds[0].Type)
	}
	if aa.MaterialColorBinds[0].TargetValue != (vrmcommon.Vector4{1, 0, 0, 1}) {
		t.Fatalf("targetValue mismatch: %v", aa.MaterialColorBinds[0].TargetValue)
	}
	if *aa.TextureTransformBinds[0].Offset != (vrmcommon.Vector2{0.5, 0}) || aa.TextureTransformBinds[0].Scale != nil {
		t.Fatalf("texture transform mismatch: %+v", aa.TextureTransformBinds[0])
	}
	if got := schema.Expressions.PresetNames(); !reflect.DeepEqual(got, []ExpressionPresetName{ExpressionPresetNameAa, ExpressionPresetNameHappy}) {
		t.Fatalf("preset names mismatch: %v", got)
	}
	if got := schema.Expressions.CustomNames(); !reflect.DeepEqual(got, []string{"smug"}) {
		t.Fatalf("custom names mismatch: %v", got)
	}

	annotations := schema.FirstPerson.MeshAnnotations
	if annotations[0].Type != FirstPersonTypeThirdPersonOnly || annotations[1].Node.Valid {
		t.Fatalf("mesh annotations mismatch: %+v", annotations)
	}

	lookAt := schema.LookAt
	if *lookAt.Type != LookAtTypeBone || lookAt.OffsetFromHeadBone.R3().Y != 0.06 {
		t.Fatalf("lookAt mismatch: %+v", lookAt)
	}
	if *lookAt.RangeMapHorizontalInner.InputMaxValue != 90 || lookAt.RangeMapVerticalUp != nil {
		t.Fatalf("range map mismatch: %+v", lookAt)
	}

	vendor := schema.Extensions["VENDOR_ext"]
	if string(vendor["flag"]) != "true" || vendor["empty"] != nil {
		t.Fatalf("extensions mismatch: %v", vendor)
	}
	if string(schema.Extras) != `{"tool":"exporter"}` {
		t.Fatalf("extras mismatch: %s", schema.Extras)
	}
}

func TestRoundTrip(t *testing.T) {
	schema, err := DecodeValue(newVrm1ExtensionForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	encoded := Encode(schema)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if !reflect.DeepEqual(schema, decoded) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", decoded, schema)
	}
	if string(Encode(decoded)) != string(encoded) {
		t.Fatalf("encode should be deterministic")
	}

	var generic map[string]any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		t.Fatalf("encoded json invalid: %v", err)
	}
	if _, ok := generic["meta"].(map[string]any)["thumbnailImage"]; ok {
		t.Fatalf("absent thumbnailImage should not be emitted")
	}
}

func TestRoundTripConstructed(t *testing.T) {
	lookAtType := LookAtTypeExpression
	schema := &Schema{
		SpecVersion: "1.0",
		Humanoid: Humanoid{HumanBones: map[HumanBoneName]*HumanBone{
			HumanBoneNameHips:    {Node: gltfref.Some[gltfref.Node](0)},
			HumanBoneNameLeftEye: {},
		}},
		Meta: Meta{
			Name:           "Constructed",
			Authors:        []string{"a"},
			LicenseURL:     "https://example.com/license",
			ThumbnailImage: gltfref.Some[gltfref.Image](0),
			Extras:         vrmcommon.MustRawValue(`{"html":"<b>"}`),
		},
		Expressions: &Expressions{
			Custom: map[string]Expression{"wink": {
				IsBinary: ptr(true),
				TextureTransformBinds: []TextureTransformBind{{
					Material: 1,
					Scale:    &vrmcommon.Vector2{2, 2},
				}},
			}},
		},
		LookAt: &LookAt{Type: &lookAtType, OffsetFromHeadBone: &vrmcommon.Vector3{0, 0.1, 0}},
	}
	decoded, err := Decode(Encode(schema))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(schema, decoded) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", decoded, schema)
	}
}

func TestEncodeNilCollectionsStillEmitRequiredFields(t *testing.T) {
	schema := &Schema{SpecVersion: "1.0", Meta: Meta{Name: "n", Authors: []string{"a"}, LicenseURL: "l"}}
	want := `{"humanoid":{"humanBones":{}},"meta":{"authors":["a"],"licenseUrl":"l","name":"n"},"specVersion":"1.0"}`
	if got := string(Encode(schema)); got != want {
		t.Fatalf("encode mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	schema, err := DecodeValue(newVrm1ExtensionForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	cloned := schema.Clone()
	if !reflect.DeepEqual(schema, cloned) {
		t.Fatalf("clone mismatch")
	}
	cloned.Meta.Authors[0] = "changed"
	delete(cloned.Humanoid.HumanBones, HumanBoneNameHips)
	if schema.Meta.Authors[0] != "author1" {
		t.Fatalf("clone shares authors with source")
	}
	if _, ok := schema.Humanoid.HumanBones[HumanBoneNameHips]; !ok {
		t.Fatalf("clone shares humanBones with source")
	}
}

func TestHumanoidMissingRequiredBones(t *testing.T) {
	schema, err := DecodeValue(newVrm1ExtensionForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	missing := schema.Humanoid.MissingRequiredBones()
	if len(missing) != len(RequiredHumanBones)-3 {
		t.Fatalf("missing bones mismatch: %v", missing)
	}
	nodes := schema.Humanoid.BoneNodes()
	if len(nodes) != 3 || nodes[HumanBoneNameHead].Int() != 0 {
		t.Fatalf("bone nodes mismatch: %v", nodes)
	}
}

func TestEnumVocabularies(t *testing.T) {
	if len(HumanBoneNames) != 55 {
		t.Fatalf("human bone count mismatch: %d", len(HumanBoneNames))
	}
	if len(ExpressionPresetNames) != 18 {
		t.Fatalf("preset count mismatch: %d", len(ExpressionPresetNames))
	}
	seen := map[HumanBoneName]struct{}{}
	for _, name := range HumanBoneNames {
		if _, ok := seen[name]; ok {
			t.Fatalf("duplicated bone: %s", name)
		}
		seen[name] = struct{}{}
	}
}
