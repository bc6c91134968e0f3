package expr

// Path returns the child indices that lead from the root of e's tree to
// e. The root has an empty path.
func Path(e Expression) []int {
	var path []int
	for p := e.Parent(); p != nil; e, p = p, p.Parent() {
		path = append(path, IndexOf(p, e))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// At follows path down from root. It returns nil when the path leaves
// the tree.
func At(root Expression, path []int) Expression {
	e := root
	for _, i := range path {
		c, ok := e.(Compound)
		if !ok || i < 0 || i >= len(c.Children()) {
			return nil
		}
		e = c.Children()[i]
	}
	return e
}
