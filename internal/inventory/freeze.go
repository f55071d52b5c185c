package inventory

// deepFreeze freezes root and every unfrozen object reachable from it. It
// walks an explicit stack rather than recursing so depth is bounded by the
// heap, and it never pushes an object that is already frozen, which keeps
// cycles finite. An object pushed twice before it is popped is frozen once.
// It returns the number of objects frozen by this call.
func deepFreeze(root node) int {
	if root.isFrozen() {
		return 0
	}

	frozen := 0
	stack := []node{root}
	for len(stack) > 0 {
		top := len(stack) - 1
		current := stack[top]
		stack = stack[:top]

		if current.isFrozen() {
			continue
		}
		current.freeze()
		frozen++

		for _, child := range current.children() {
			if child != nil && !child.isFrozen() {
				stack = append(stack, child)
			}
		}
	}
	return frozen
}
