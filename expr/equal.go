package expr

// Equal reports whether a and b have the same structure: the same
// variants, operators, literal text and operand order. Parent links are
// not compared.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case *Literal:
		return a.text == b.(*Literal).text
	case *Chain:
		bc := b.(*Chain)
		return a.op == bc.op && equalChildren(a.children, bc.children)
	case *Paren:
		return equalChildren(a.children, b.(*Paren).children)
	}
	return false
}

func equalChildren(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
