// 指示: miu200521358
package minteractor

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm"
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/mtoon"
)

// VerifyRoundTrip は各拡張をエンコードして読み直し、元の値と一致するかを検証する。
// 一致しない拡張があった場合は拡張名を含むエラーを返す。
func VerifyRoundTrip(set *vrm.ExtensionSet) error {
	if set == nil {
		return nil
	}
	materials := map[int]json.RawMessage{}
	for _, index := range set.MtoonMaterialIndexes() {
		materials[index] = mtoon.Encode(set.Mtoon[index])
	}
	decoded, err := vrm.DecodeExtensionSet(set.RootExtensions(), materials)
	if err != nil {
		return fmt.Errorf("再読込に失敗しました: %w", err)
	}

	if !reflect.DeepEqual(set.Vrm0, decoded.Vrm0) {
		return fmt.Errorf("VRM拡張の再読込結果が一致しません")
	}
	if !reflect.DeepEqual(set.Vrm1, decoded.Vrm1) {
		return fmt.Errorf("VRMC_vrm拡張の再読込結果が一致しません")
	}
	if !reflect.DeepEqual(set.SpringBone, decoded.SpringBone) {
		return fmt.Errorf("VRMC_springBone拡張の再読込結果が一致しません")
	}
	for _, index := range set.MtoonMaterialIndexes() {
		if !reflect.DeepEqual(set.Mtoon[index], decoded.Mtoon[index]) {
			return fmt.Errorf("materials[%d]のVRMC_materials_mtoon拡張の再読込結果が一致しません", index)
		}
	}
	return nil
}
