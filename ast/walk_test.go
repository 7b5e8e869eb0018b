package ast

import "testing"

func sampleTree() *Document {
	return &Document{
		Children: []Node{
			&Element{
				Name: "view",
				Children: []Node{
					&Text{Content: "hi "},
					&Expression{Content: "{{name}}"},
					&Element{Name: "Button"},
				},
			},
			&Comment{Content: " done "},
		},
	}
}

func TestWalkOrder(t *testing.T) {
	var visited []string

	Walk(sampleTree(), func(n Node) bool {
		switch v := n.(type) {
		case *Document:
			visited = append(visited, "doc")
		case *Element:
			visited = append(visited, v.Name)
		case *Text:
			visited = append(visited, "text")
		case *Expression:
			visited = append(visited, "expr")
		case *Comment:
			visited = append(visited, "comment")
		}

		return true
	})

	want := []string{"doc", "view", "text", "expr", "Button", "comment"}

	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}

	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	count := 0

	Walk(sampleTree(), func(n Node) bool {
		count++
		_, isElement := n.(*Element)

		return !isElement // do not descend into elements
	})

	// doc, view, comment; the view subtree is pruned
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

func TestFind(t *testing.T) {
	tree := sampleTree()

	n := Find(tree, func(n Node) bool {
		_, ok := n.(*Expression)
		return ok
	})

	expr, ok := n.(*Expression)
	if !ok || expr.Content != "{{name}}" {
		t.Errorf("Find returned %#v", n)
	}

	if Find(tree, func(Node) bool { return false }) != nil {
		t.Errorf("Find without match must return nil")
	}
}

func TestFindAll(t *testing.T) {
	all := FindAll(sampleTree(), func(n Node) bool {
		_, ok := n.(*Element)
		return ok
	})

	if len(all) != 2 {
		t.Errorf("found %d elements, want 2", len(all))
	}
}

func TestFindElementsByTag(t *testing.T) {
	// Tag lookup ignores case.
	found := FindElementsByTag(sampleTree(), "button")

	if len(found) != 1 || found[0].Name != "Button" {
		t.Errorf("FindElementsByTag = %v", found)
	}
}

func TestChildrenOfLeaves(t *testing.T) {
	if Children(&Text{Content: "x"}) != nil {
		t.Errorf("text nodes have no children")
	}

	if Children(&Comment{Content: "x"}) != nil {
		t.Errorf("comments have no children")
	}
}
