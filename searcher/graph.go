package searcher

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot exports the subtree rooted at n, down to maxDepth levels below it, in
// Graphviz DOT format. A negative maxDepth exports the whole subtree.
func (n *Node) ToDot(maxDepth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	id := 0
	var visit func(node *Node, depth int) (string, error)
	visit = func(node *Node, depth int) (string, error) {
		name := fmt.Sprintf("n%d", id)
		id++

		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "box",
			"label":    dotLabel(node),
		}
		if err := g.AddNode("G", name, attrs); err != nil {
			return "", errors.WithMessagef(err, "adding node %s", name)
		}

		if maxDepth >= 0 && depth >= maxDepth {
			return name, nil
		}
		for _, child := range node.children {
			childName, err := visit(child, depth+1)
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(name, childName, true, nil); err != nil {
				return "", errors.WithMessagef(err, "adding edge %s -> %s", name, childName)
			}
		}
		return name, nil
	}

	if _, err := visit(n, 0); err != nil {
		return "", err
	}
	return g.String(), nil
}

func dotLabel(n *Node) string {
	var sb strings.Builder
	if move, ok := n.Move(); ok {
		fmt.Fprintf(&sb, "move %v\\n", move)
	} else {
		sb.WriteString("root\\n")
	}
	fmt.Fprintf(&sb, "visits %d\\nreward %.1f\\n", n.visits, n.rewards)
	sb.WriteString(strings.ReplaceAll(n.state.String(), "\n", "\\n"))
	return `"` + sb.String() + `"`
}
