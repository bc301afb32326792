// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/model"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/springbone"
)

// CheckSpringChains は各springのjointが直前のjointの子孫になっているかをnodeの親子関係で検証する。
// parentsはnodeごとの親index(ルートは-1)。
func CheckSpringChains(schema *springbone.Schema, parents []int) []model.VrmWarning {
	if schema == nil {
		return nil
	}
	var warnings []model.VrmWarning
	for i, spring := range schema.Springs {
		for j := 1; j < len(spring.Joints); j++ {
			ancestor := spring.Joints[j-1].Node.Int()
			node := spring.Joints[j].Node.Int()
			if isDescendant(parents, node, ancestor) {
				continue
			}
			warnings = append(warnings, model.NewVrmWarning(
				model.VrmWarningSpringChainBroken,
				fmt.Sprintf("%s.springs[%d].joints[%d]", springbone.ExtensionName, i, j),
				"node %d は直前のjointのnode %d の子孫ではありません", node, ancestor))
		}
	}
	return warnings
}

// isDescendant はnodeがancestorの子孫かを判定する。循環している場合は偽。
func isDescendant(parents []int, node int, ancestor int) bool {
	if node < 0 || node >= len(parents) || ancestor < 0 || ancestor >= len(parents) {
		return false
	}
	current := parents[node]
	for steps := 0; current >= 0 && current < len(parents) && steps < len(parents); steps++ {
		if current == ancestor {
			return true
		}
		current = parents[current]
	}
	return false
}
