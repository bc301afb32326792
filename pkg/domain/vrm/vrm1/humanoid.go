// 指示: miu200521358
package vrm1

import "github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"

// RequiredHumanBones はVRM 1.0のヒューマノイドで必須とされるボーン。
var RequiredHumanBones = []HumanBoneName{
	HumanBoneNameHips, HumanBoneNameSpine, HumanBoneNameHead,
	HumanBoneNameLeftUpperLeg, HumanBoneNameLeftLowerLeg, HumanBoneNameLeftFoot,
	HumanBoneNameRightUpperLeg, HumanBoneNameRightLowerLeg, HumanBoneNameRightFoot,
	HumanBoneNameLeftUpperArm, HumanBoneNameLeftLowerArm, HumanBoneNameLeftHand,
	HumanBoneNameRightUpperArm, HumanBoneNameRightLowerArm, HumanBoneNameRightHand,
}

// BoneNodes はnodeが指定されたボーンの対応を返す。
func (h *Humanoid) BoneNodes() map[HumanBoneName]gltfref.Index[gltfref.Node] {
	result := map[HumanBoneName]gltfref.Index[gltfref.Node]{}
	if h == nil {
		return result
	}
	for name, bone := range h.HumanBones {
		if bone == nil {
			continue
		}
		if node, ok := bone.Node.Get(); ok {
			result[name] = node
		}
	}
	return result
}

// MissingRequiredBones はnodeが割り当てられていない必須ボーンを返す。
// デコード時には検証しないため、利用側で必要に応じて呼び出す。
func (h *Humanoid) MissingRequiredBones() []HumanBoneName {
	nodes := h.BoneNodes()
	var missing []HumanBoneName
	for _, name := range RequiredHumanBones {
		if _, ok := nodes[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
