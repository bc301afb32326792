// 指示: miu200521358
package gltfref

import (
	"encoding/json"
	"reflect"
	"testing"
)

type referenceHolder struct {
	Node     OptionalIndex[Node] `json:"node,omitzero"`
	Mesh     Index[Mesh]         `json:"mesh"`
	Textures IndexMap[Texture]   `json:"textures,omitzero"`
	Floats   FloatMap            `json:"floats,omitzero"`
	Images   []Index[Image]      `json:"images,omitzero"`
}

func TestOptionalIndexNegativeIsAbsent(t *testing.T) {
	var holder referenceHolder
	if err := json.Unmarshal([]byte(`{"node": -1, "mesh": 0}`), &holder); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if holder.Node.Valid {
		t.Fatalf("expected absent node, got %s", holder.Node)
	}
	if holder.Mesh.Int() != 0 {
		t.Fatalf("mesh mismatch: %d", holder.Mesh.Int())
	}
}

func TestOptionalIndexZeroIsPresent(t *testing.T) {
	var holder referenceHolder
	if err := json.Unmarshal([]byte(`{"node": 0, "mesh": 1}`), &holder); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	index, ok := holder.Node.Get()
	if !ok || index.Int() != 0 {
		t.Fatalf("expected present node 0, got %s", holder.Node)
	}
	if holder.Node.String() != "nodes[0]" {
		t.Fatalf("string mismatch: %s", holder.Node.String())
	}
}

func TestOptionalIndexNullAndMissing(t *testing.T) {
	var missing referenceHolder
	if err := json.Unmarshal([]byte(`{"mesh": 2}`), &missing); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if missing.Node.Valid {
		t.Fatalf("missing node should be absent")
	}

	nulled := referenceHolder{Node: Some[Node](5)}
	if err := json.Unmarshal([]byte(`{"node": null, "mesh": 2}`), &nulled); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if nulled.Node.Valid {
		t.Fatalf("null should clear node")
	}
}

func TestOptionalIndexRejectsNonInteger(t *testing.T) {
	for _, input := range []string{`{"node": "1", "mesh": 0}`, `{"node": 1.5, "mesh": 0}`} {
		var holder referenceHolder
		if err := json.Unmarshal([]byte(input), &holder); err == nil {
			t.Fatalf("expected error for %s", input)
		}
	}
}

func TestIndexRejectsNegativeAndNull(t *testing.T) {
	for _, input := range []string{`{"mesh": -1}`, `{"mesh": null}`, `{"mesh": 0, "images": [0, -2]}`} {
		var holder referenceHolder
		if err := json.Unmarshal([]byte(input), &holder); err == nil {
			t.Fatalf("expected error for %s", input)
		}
	}
}

func TestIndexMapDropsNegativeEntries(t *testing.T) {
	var holder referenceHolder
	if err := json.Unmarshal([]byte(`{"mesh": 0, "textures": {"a": 2, "b": -1, "c": 0}}`), &holder); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := IndexMap[Texture]{"a": 2, "c": 0}
	if !reflect.DeepEqual(holder.Textures, want) {
		t.Fatalf("textures mismatch: got=%v want=%v", holder.Textures, want)
	}
}

func TestFloatMapSkipsNullValues(t *testing.T) {
	var holder referenceHolder
	if err := json.Unmarshal([]byte(`{"mesh": 0, "floats": {"x": 1.5, "y": null}}`), &holder); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := FloatMap{"x": 1.5}
	if !reflect.DeepEqual(holder.Floats, want) {
		t.Fatalf("floats mismatch: got=%v want=%v", holder.Floats, want)
	}
}

func TestFloatMapRejectsWrongKind(t *testing.T) {
	var holder referenceHolder
	if err := json.Unmarshal([]byte(`{"mesh": 0, "floats": {"x": "1.5"}}`), &holder); err == nil {
		t.Fatalf("expected error for string value")
	}
}

func TestReferenceHolderMarshalOmitsAbsent(t *testing.T) {
	holder := referenceHolder{Mesh: NewIndex[Mesh](3)}
	b, err := json.Marshal(holder)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"mesh":3}` {
		t.Fatalf("json mismatch: %s", string(b))
	}

	holder.Node = Some[Node](0)
	holder.Textures = IndexMap[Texture]{}
	b, err = json.Marshal(holder)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"node":0,"mesh":3,"textures":{}}` {
		t.Fatalf("json mismatch: %s", string(b))
	}
}

func TestSanitizeHelpers(t *testing.T) {
	if SanitizeIndex[Node](-5).Valid {
		t.Fatalf("negative should be absent")
	}
	if got := SanitizeIndex[Node](4); !got.Valid || got.Index.Int() != 4 {
		t.Fatalf("expected nodes[4], got %s", got)
	}
	if SanitizeIndexMap[Texture](nil) != nil {
		t.Fatalf("nil map should stay nil")
	}
	value := 2.0
	got := SkipNullFloats(map[string]*float64{"a": &value, "b": nil})
	if !reflect.DeepEqual(got, FloatMap{"a": 2}) {
		t.Fatalf("skip null mismatch: %v", got)
	}
	if NewIndex[Accessor](1).String() != "accessors[1]" {
		t.Fatalf("index string mismatch: %s", NewIndex[Accessor](1).String())
	}
	if None[Image]().String() != "none" {
		t.Fatalf("none string mismatch")
	}
}

func TestIndexListDropsNegativeElements(t *testing.T) {
	var list IndexList[Node]
	if err := json.Unmarshal([]byte(`[3, -1, 0, -7]`), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(list, IndexList[Node]{3, 0}) {
		t.Fatalf("list mismatch: %v", list)
	}
	if err := json.Unmarshal([]byte(`null`), &list); err != nil || list != nil {
		t.Fatalf("null should clear list: %v %v", list, err)
	}
	if err := json.Unmarshal([]byte(`[1.5]`), &list); err == nil {
		t.Fatalf("expected error for non-integer element")
	}
	if got := SanitizeIndexList[Node]([]int64{}); got == nil || len(got) != 0 {
		t.Fatalf("empty list should stay empty: %#v", got)
	}
}
