package sema

import (
	"expgate/internal/syntax"
)

// isBodySlot reports whether a slot is one of the strictly-internal
// positions: content there can never surface in an externally visible
// signature.
func isBodySlot(s syntax.Slot) bool {
	switch s {
	case syntax.SlotFuncBody,
		syntax.SlotGetterBody,
		syntax.SlotSetterBody,
		syntax.SlotPropertyInit,
		syntax.SlotParamDefault,
		syntax.SlotInitBlock,
		syntax.SlotSuperCallArgs,
		syntax.SlotSuperDelegate,
		syntax.SlotPropertyDelegate:
		return true
	case syntax.SlotNone, syntax.SlotSignature, syntax.SlotOther:
		return false
	}
	return false
}

// isBodyUsage walks parent links upward from the usage site. The usage is a
// body usage as soon as any node on the way sits in a body slot of its
// parent; reaching the file root without a hit means the usage can leak into
// a signature. Terminates because parent links form a finite tree rooted at
// the file.
func isBodyUsage(use *syntax.Node) bool {
	for cur := use; cur != nil && cur.Parent != nil; cur = cur.Parent {
		if isBodySlot(cur.Slot) {
			return true
		}
	}
	return false
}
