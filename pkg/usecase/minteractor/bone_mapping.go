// 指示: miu200521358
package minteractor

import (
	"slices"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm0"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrm1"
)

// legacyThumbBoneRules はVRM 0.0とVRM 1.0で名前がずれる親指ボーンの対応を保持する。
// VRM 1.0では親指の根元がmetacarpalとなり、0.0のintermediateはproximalへ繰り上がる。
var legacyThumbBoneRules = map[vrm0.Bone]vrm1.HumanBoneName{
	vrm0.BoneLeftThumbProximal:      vrm1.HumanBoneNameLeftThumbMetacarpal,
	vrm0.BoneLeftThumbIntermediate:  vrm1.HumanBoneNameLeftThumbProximal,
	vrm0.BoneLeftThumbDistal:        vrm1.HumanBoneNameLeftThumbDistal,
	vrm0.BoneRightThumbProximal:     vrm1.HumanBoneNameRightThumbMetacarpal,
	vrm0.BoneRightThumbIntermediate: vrm1.HumanBoneNameRightThumbProximal,
	vrm0.BoneRightThumbDistal:       vrm1.HumanBoneNameRightThumbDistal,
}

// MapLegacyBone はVRM 0.0のボーン名をVRM 1.0のボーン名へ変換する。
func MapLegacyBone(bone vrm0.Bone) (vrm1.HumanBoneName, bool) {
	if name, ok := legacyThumbBoneRules[bone]; ok {
		return name, true
	}
	name := vrm1.HumanBoneName(bone)
	if !slices.Contains(vrm1.HumanBoneNames, name) {
		return "", false
	}
	return name, true
}

// UnifiedHumanBones はVRMバージョンによらず、VRM 1.0のボーン名からnodeへの対応を返す。
// VRM 1.0の定義を優先し、定義がない場合のみVRM 0.0の定義を変換して使う。
func UnifiedHumanBones(set *vrm.ExtensionSet) map[vrm1.HumanBoneName]gltfref.Index[gltfref.Node] {
	out := map[vrm1.HumanBoneName]gltfref.Index[gltfref.Node]{}
	if set == nil {
		return out
	}
	if set.Vrm1 != nil {
		for name, node := range set.Vrm1.Humanoid.BoneNodes() {
			out[name] = node
		}
	}
	if len(out) > 0 || set.Vrm0 == nil {
		return out
	}
	for bone, node := range set.Vrm0.Humanoid.BoneNodes() {
		name, ok := MapLegacyBone(bone)
		if !ok {
			continue
		}
		out[name] = node
	}
	return out
}

// MissingRequiredHumanBones はUnifiedHumanBonesで割り当てのない必須ボーンを返す。
func MissingRequiredHumanBones(set *vrm.ExtensionSet) []vrm1.HumanBoneName {
	bones := UnifiedHumanBones(set)
	var missing []vrm1.HumanBoneName
	for _, name := range vrm1.RequiredHumanBones {
		if _, ok := bones[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
