// 指示: miu200521358
package vrm1

import "slices"

// PresetNames は定義されている表情名を一覧の順で返す。
func (e *Expressions) PresetNames() []ExpressionPresetName {
	if e == nil {
		return nil
	}
	names := make([]ExpressionPresetName, 0, len(e.Preset))
	for _, name := range ExpressionPresetNames {
		if _, ok := e.Preset[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// CustomNames は独自表情名を昇順で返す。
func (e *Expressions) CustomNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Custom))
	for name := range e.Custom {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
