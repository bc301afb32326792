// 指示: miu200521358
package vrm0

import "github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/gltfref"

// RequiredBones はVRM 0.0のヒューマノイドで必須とされるボーン。
var RequiredBones = []Bone{
	BoneHips, BoneSpine, BoneChest, BoneNeck, BoneHead,
	BoneLeftUpperArm, BoneLeftLowerArm, BoneLeftHand,
	BoneRightUpperArm, BoneRightLowerArm, BoneRightHand,
	BoneLeftUpperLeg, BoneLeftLowerLeg, BoneLeftFoot,
	BoneRightUpperLeg, BoneRightLowerLeg, BoneRightFoot,
}

// BoneNodes はnodeが指定されたボーンの対応を返す。同じボーンが複数ある場合は先頭を採用する。
func (h *Humanoid) BoneNodes() map[Bone]gltfref.Index[gltfref.Node] {
	result := map[Bone]gltfref.Index[gltfref.Node]{}
	if h == nil {
		return result
	}
	for _, humanBone := range h.HumanBones {
		if humanBone.Bone == nil {
			continue
		}
		node, ok := humanBone.Node.Get()
		if !ok {
			continue
		}
		if _, exists := result[*humanBone.Bone]; exists {
			continue
		}
		result[*humanBone.Bone] = node
	}
	return result
}

// MissingRequiredBones はnodeが割り当てられていない必須ボーンを返す。
// デコード時には検証しないため、利用側で必要に応じて呼び出す。
func (h *Humanoid) MissingRequiredBones() []Bone {
	nodes := h.BoneNodes()
	var missing []Bone
	for _, bone := range RequiredBones {
		if _, ok := nodes[bone]; !ok {
			missing = append(missing, bone)
		}
	}
	return missing
}
