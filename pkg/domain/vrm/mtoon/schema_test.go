// 指示: miu200521358
package mtoon

import (
	"reflect"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
)

func ptr[T any](v T) *T {
	return &v
}

func newMtoonExtensionForTest() map[string]any {
	return map[string]any{
		"specVersion":                     "1.0",
		"transparentWithZWrite":           false,
		"renderQueueOffsetNumber":         0,
		"shadeColorFactor":                []float64{0.97, 0.81, 0.86},
		"shadeMultiplyTexture":            map[string]any{"index": 1, "texCoord": 0},
		"shadingShiftFactor":              -0.05,
		"shadingShiftTexture":             map[string]any{"index": 2, "scale": 1, "texCoord": -1},
		"shadingToonyFactor":              0.95,
		"giEqualizationFactor":            0.9,
		"matcapFactor":                    []float64{1, 1, 1},
		"matcapTexture":                   map[string]any{"index": 3, "extras": map[string]any{"source": "matcap.png"}},
		"parametricRimColorFactor":        []float64{0, 0, 0},
		"parametricRimFresnelPowerFactor": 5,
		"parametricRimLiftFactor":         0,
		"rimLightingMixFactor":            1,
		"outlineWidthMode":                "worldCoordinates",
		"outlineWidthFactor":              0.002,
		"outlineColorFactor":              []float64{0.3, 0.1, 0.1},
		"outlineLightingMixFactor":        1,
		"uvAnimationScrollXSpeedFactor":   0,
		"uvAnimationScrollYSpeedFactor":   0,
		"uvAnimationRotationSpeedFactor":  0,
	}
}

func TestDecodeSample(t *testing.T) {
	schema, err := DecodeValue(newMtoonExtensionForTest())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if schema.SpecVersion != "1.0" {
		t.Fatalf("specVersion mismatch: %s", schema.SpecVersion)
	}
	if *schema.OutlineWidthMode != OutlineWidthModeWorldCoordinates {
		t.Fatalf("outlineWidthMode mismatch: %s", *schema.OutlineWidthMode)
	}
	if *schema.ShadeColorFactor != (vrmcommon.Vector3{0.97, 0.81, 0.86}) {
		t.Fatalf("shadeColorFactor mismatch: %v", *schema.ShadeColorFactor)
	}
	if *schema.RenderQueueOffsetNumber != 0 || *schema.TransparentWithZWrite {
		t.Fatalf("zero values should be kept as present: %+v", schema)
	}
	if schema.ShadeMultiplyTexture.TexCoordOrDefault() != 0 || !schema.ShadeMultiplyTexture.TexCoord.Valid {
		t.Fatalf("texCoord 0 should be present: %+v", schema.ShadeMultiplyTexture)
	}
	if schema.ShadingShiftTexture.TexCoord.Valid || *schema.ShadingShiftTexture.Scale != 1 {
		t.Fatalf("shadingShiftTexture mismatch: %+v", schema.ShadingShiftTexture)
	}
	if string(schema.MatcapTexture.Extras) != `{"source":"matcap.png"}` {
		t.Fatalf("matcap extras mismatch: %s", schema.MatcapTexture.Extras)
	}
	if schema.RimMultiplyTexture != nil || schema.UVAnimationMaskTexture != nil {
		t.Fatalf("absent textures should be nil")
	}

	want := map[string]gltfref.Index[gltfref.Texture]{
		"shadeMultiplyTexture": 1,
		"shadingShiftTexture":  2,
		"matcapTexture":        3,
	}
	if got := schema.Textures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("textures mismatch: got=%v want=%v", got, want)
	}
}

func TestDecodeSpecVersionOnly(t *testing.T) {
	schema, err := Decode([]byte(`{"specVersion": "1.0"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(*schema, Schema{SpecVersion: "1.0"}) {
		t.Fatalf("optional fields should be absent: %+v", schema)
	}
	if got := string(Encode(schema)); got != `{"specVersion":"1.0"}` {
		t.Fatalf("encode mismatch: %s", got)
	}
}

func TestDecodeStructuralErrors(t *testing.T) {
	cases := map[string]string{
		"specVersion missing":      `{}`,
		"specVersion null":         `{"specVersion": null}`,
		"outlineWidthMode unknown": `{"specVersion": "1.0", "outlineWidthMode": "mixed"}`,
		"texture index missing":    `{"specVersion": "1.0", "matcapTexture": {"texCoord": 0}}`,
		"texture index negative":   `{"specVersion": "1.0", "rimMultiplyTexture": {"index": -1}}`,
		"factor wrong length":      `{"specVersion": "1.0", "shadeColorFactor": [1, 1, 1, 1]}`,
		"factor wrong kind":        `{"specVersion": "1.0", "shadingToonyFactor": "0.9"}`,
	}
	for name, input := range cases {
		if _, err := Decode([]byte(input)); !merr.IsStructuralDecodeError(err) {
			t.Fatalf("%s: expected structural decode error, got %v", name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	schema, err := DecodeValue(newMtoonExtensionForTest())
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
}

func TestRoundTripConstructed(t *testing.T) {
	mode := OutlineWidthModeScreenCoordinates
	schema := &Schema{
		SpecVersion:      "1.0",
		OutlineWidthMode: &mode,
		RimMultiplyTexture: &TextureInfo{
			Index:    4,
			TexCoord: gltfref.Some[gltfref.Accessor](1),
		},
		UVAnimationScrollYSpeedFactor: ptr(0.5),
		Extensions: vrmcommon.Extensions{
			"KHR_texture_transform": {"offset": vrmcommon.MustRawValue(`[0,0]`)},
		},
	}
	decoded, err := Decode(Encode(schema))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(schema, decoded) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", decoded, schema)
	}
}
