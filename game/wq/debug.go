package 围碁

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot renders the groups on the board as a Graphviz graph. Each group is a node, labelled with
// its colour, size and liberties. Groups of opposite colours that touch are joined by an edge.
func (b *Board) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(false); err != nil {
		return "", errors.WithStack(err)
	}

	groups := b.Groups()
	for _, grp := range groups {
		attrs := map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": fillColour(grp),
			"fontcolor": fontColour(grp),
			"label":     fmt.Sprintf("\"#%d\\n%d stones\\n%d libs\"", grp.id, grp.Size(), b.Liberties(grp)),
		}
		if err := g.AddNode("G", nodeName(grp), attrs); err != nil {
			return "", errors.Wrapf(err, "Unable to add node for group %d", grp.id)
		}
	}

	for _, grp := range groups {
		seen := make(map[groupID]struct{})
		for c := range grp.border {
			other := b.GroupAt(c)
			if other == nil || other.colour == grp.colour || other.id < grp.id {
				continue
			}
			if _, ok := seen[other.id]; ok {
				continue
			}
			seen[other.id] = struct{}{}
			if err := g.AddEdge(nodeName(grp), nodeName(other), false, nil); err != nil {
				return "", errors.Wrapf(err, "Unable to add edge between groups %d and %d", grp.id, other.id)
			}
		}
	}
	return g.String(), nil
}

func nodeName(g *Group) string { return fmt.Sprintf("g%d", g.id) }

func fillColour(g *Group) string {
	if g.colour == Black {
		return "black"
	}
	return "white"
}

func fontColour(g *Group) string {
	if g.colour == Black {
		return "white"
	}
	return "black"
}
