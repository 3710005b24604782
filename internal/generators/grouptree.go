package generators

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chengwei920412/makeprojects/internal/model"
)

// groupNode is one IDE display folder. The root node carries no name
// and holds the files whose group is empty.
type groupNode struct {
	name     string
	children map[string]*groupNode
	files    []*model.SourceFile
}

var groupCollator = collate.New(language.Und, collate.IgnoreCase)

func groupLess(a, b string) bool {
	if r := groupCollator.CompareString(a, b); r != 0 {
		return r < 0
	}
	return a < b
}

func newGroupNode(name string) *groupNode {
	return &groupNode{name: name, children: make(map[string]*groupNode)}
}

// buildGroupTree distributes files into nested folders based on their
// group name, so "source/gfx/blit.cpp" lands in source > gfx.
func buildGroupTree(files []*model.SourceFile) *groupNode {
	root := newGroupNode("")
	for _, file := range files {
		node := root
		group := file.GroupName()
		if group != "" {
			for _, part := range strings.Split(group, "/") {
				child, ok := node.children[part]
				if !ok {
					child = newGroupNode(part)
					node.children[part] = child
				}
				node = child
			}
		}
		node.files = append(node.files, file)
	}
	root.sortTree()
	return root
}

// sortTree orders the files in each node case-insensitively by base
// name. Child ordering is resolved at walk time.
func (g *groupNode) sortTree() {
	sort.Slice(g.files, func(i, j int) bool {
		return groupLess(g.files[i].BaseName(), g.files[j].BaseName())
	})
	for _, child := range g.children {
		child.sortTree()
	}
}

// sortedChildren returns the sub folders in case-insensitive order.
func (g *groupNode) sortedChildren() []*groupNode {
	names := make([]string, 0, len(g.children))
	for name := range g.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return groupLess(names[i], names[j]) })
	out := make([]*groupNode, 0, len(names))
	for _, name := range names {
		out = append(out, g.children[name])
	}
	return out
}
