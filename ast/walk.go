package ast

import "strings"

// Children returns the child list of nodes that have one, nil for the
// leaf variants.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Document:
		return t.Children
	case *Element:
		return t.Children
	}

	return nil
}

// Walk visits n and its descendants in document order. Returning false
// from fn prunes the subtree below the current node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Find returns the first node in document order for which pred holds,
// or nil.
func Find(n Node, pred func(Node) bool) Node {
	var found Node

	Walk(n, func(c Node) bool {
		if found != nil {
			return false
		}

		if pred(c) {
			found = c
			return false
		}

		return true
	})

	return found
}

// FindAll returns every node in document order for which pred holds.
func FindAll(n Node, pred func(Node) bool) []Node {
	var result []Node

	Walk(n, func(c Node) bool {
		if pred(c) {
			result = append(result, c)
		}

		return true
	})

	return result
}

// FindElementsByTag returns all elements with the given name, ignoring
// case.
func FindElementsByTag(n Node, name string) []*Element {
	var result []*Element

	Walk(n, func(c Node) bool {
		if el, ok := c.(*Element); ok && strings.EqualFold(el.Name, name) {
			result = append(result, el)
		}

		return true
	})

	return result
}
