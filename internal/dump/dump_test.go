package dump

import (
	"strings"
	"testing"
)

type node struct {
	Name     string
	Children []*node
	Parent   *node
}

func TestString(t *testing.T) {
	root := &node{Name: "score"}
	child := &node{Name: "part", Parent: root}
	root.Children = []*node{child}

	got := String(root)
	for _, want := range []string{"score", "part", "already shown"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want it to contain %q", got, want)
		}
	}
}

func TestDepth(t *testing.T) {
	root := &node{Name: "a", Children: []*node{{Name: "b", Children: []*node{{Name: "c"}}}}}
	got := Depth(root, 1)
	if strings.Contains(got, `"c"`) {
		t.Errorf("Depth(1) = %q, should stop before the grandchild", got)
	}
}
