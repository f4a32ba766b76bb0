package libdiff

import (
	"github.com/jute-format/go-jute/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the two field sequences by mapping field names to
// runes and running a rune diff over them: deleted names become removals,
// inserted names become additions, and names common to both recurse on
// the value.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := &ir.Node{Type: ir.ObjectType}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if fRes := df(from.Values[fi], to.Values[ti]); fRes != nil {
					res.Set(runeMap[r], fRes)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(res.Fields) == 0 {
		return nil
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i]
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
