package ui

// Traverse visits root, calls onEnter, walks the children in declared order,
// then calls onLeave. onEnter sees widgets pre-order and onLeave post-order.
// Either callback may be nil.
func Traverse(root Widget, onEnter, onLeave func(Widget)) {
	if onEnter != nil {
		onEnter(root)
	}
	root.WalkChildren(func(child Widget) {
		Traverse(child, onEnter, onLeave)
	})
	if onLeave != nil {
		onLeave(root)
	}
}
