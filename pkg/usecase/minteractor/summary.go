// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
)

// Summary はVRM文書の概要を表す。
type Summary struct {
	Name      string         `json:"name"`
	Path      string         `json:"path"`
	Version   vrm.VrmVersion `json:"version"`
	Profile   vrm.VrmProfile `json:"profile"`
	Generator string         `json:"generator,omitempty"`
	// Title はVRM 1.0のmeta.name、VRM 0.0のmeta.title。
	Title        string   `json:"title,omitempty"`
	ModelVersion string   `json:"modelVersion,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	// License はVRM 1.0のmeta.licenseUrl、VRM 0.0のmeta.licenseName。
	License               string   `json:"license,omitempty"`
	Extensions            []string `json:"extensions"`
	NodeCount             int      `json:"nodeCount"`
	MaterialCount         int      `json:"materialCount"`
	MtoonMaterialCount    int      `json:"mtoonMaterialCount"`
	HumanBoneCount        int      `json:"humanBoneCount"`
	MissingRequiredBones  []string `json:"missingRequiredBones,omitempty"`
	ExpressionCount       int      `json:"expressionCount"`
	PresetExpressionCount int      `json:"presetExpressionCount"`
	SpringCount           int      `json:"springCount"`
	// JointCount はVRM 0.0ではboneGroupsのルートボーン数。
	JointCount         int `json:"jointCount"`
	ColliderCount      int `json:"colliderCount"`
	ColliderGroupCount int `json:"colliderGroupCount"`
}

// BuildSummary は文書から概要を組み立てる。
func BuildSummary(doc *vrm.VrmDocument) *Summary {
	if doc == nil {
		return nil
	}
	summary := &Summary{
		Name:          doc.Name,
		Path:          doc.Path,
		NodeCount:     len(doc.NodeNames),
		MaterialCount: len(doc.MaterialNames),
		Extensions:    []string{},
	}
	set := doc.Extensions
	if set == nil {
		return summary
	}

	summary.Version = set.Version()
	summary.Profile = set.Profile()
	summary.Generator = set.AssetGenerator
	if names := set.Names(); names != nil {
		summary.Extensions = names
	}
	summary.MtoonMaterialCount = len(set.Mtoon)
	applyMetaSummary(summary, set)

	summary.HumanBoneCount = len(UnifiedHumanBones(set))
	if set.Vrm0 != nil || set.Vrm1 != nil {
		for _, name := range MissingRequiredHumanBones(set) {
			summary.MissingRequiredBones = append(summary.MissingRequiredBones, string(name))
		}
	}

	for _, entry := range UnifiedExpressions(set) {
		summary.ExpressionCount++
		if entry.Preset {
			summary.PresetExpressionCount++
		}
	}

	applySpringSummary(summary, set)
	return summary
}

// applyMetaSummary はVRM 1.0を優先してメタ情報を反映する。
func applyMetaSummary(summary *Summary, set *vrm.ExtensionSet) {
	if set.Vrm1 != nil {
		meta := set.Vrm1.Meta
		summary.Title = meta.Name
		summary.Authors = append([]string(nil), meta.Authors...)
		summary.License = meta.LicenseURL
		if meta.Version != nil {
			summary.ModelVersion = *meta.Version
		}
		return
	}
	if set.Vrm0 == nil || set.Vrm0.Meta == nil {
		return
	}
	meta := set.Vrm0.Meta
	if meta.Title != nil {
		summary.Title = *meta.Title
	}
	if meta.Author != nil && *meta.Author != "" {
		summary.Authors = []string{*meta.Author}
	}
	if meta.LicenseName != nil {
		summary.License = string(*meta.LicenseName)
	}
	if meta.Version != nil {
		summary.ModelVersion = *meta.Version
	}
}

// applySpringSummary はVRMC_springBoneを優先し、なければVRM 0.0のsecondaryAnimationを数える。
func applySpringSummary(summary *Summary, set *vrm.ExtensionSet) {
	if set.SpringBone != nil {
		summary.SpringCount = len(set.SpringBone.Springs)
		for _, spring := range set.SpringBone.Springs {
			summary.JointCount += len(spring.Joints)
		}
		summary.ColliderCount = len(set.SpringBone.Colliders)
		summary.ColliderGroupCount = len(set.SpringBone.ColliderGroups)
		return
	}
	if set.Vrm0 == nil || set.Vrm0.SecondaryAnimation == nil {
		return
	}
	secondary := set.Vrm0.SecondaryAnimation
	summary.SpringCount = len(secondary.BoneGroups)
	for _, group := range secondary.BoneGroups {
		summary.JointCount += len(group.Bones)
	}
	summary.ColliderGroupCount = len(secondary.ColliderGroups)
	for _, group := range secondary.ColliderGroups {
		summary.ColliderCount += len(group.Colliders)
	}
}
