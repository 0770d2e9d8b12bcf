package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/termgraph/graph"
)

// VisibleBounds returns the graph coordinates of the top-left and bottom-right cells
func VisibleBounds(size graph.Size, v graph.Viewport) (topLeft, bottomRight graph.Coord) {
	if size.Empty() {
		return graph.Coord{}, graph.Coord{}
	}
	center := v.Center(size)
	s := v.ScaleFactor()
	topLeft = graph.ToGraphSpace(graph.Coord{}, center, s)
	bottomRight = graph.ToGraphSpace(graph.Coord{X: size.Width - 1, Y: size.Height - 1}, center, s)
	return topLeft, bottomRight
}

// StatusLine describes the viewport and the plotted formulas
func StatusLine(size graph.Size, v graph.Viewport, labels []string) string {
	tl, br := VisibleBounds(size, v)

	var sb strings.Builder
	fmt.Fprintf(&sb, " x[%s, %s] y[%s, %s]",
		humanize.Comma(int64(tl.X)), humanize.Comma(int64(br.X)),
		humanize.Comma(int64(br.Y)), humanize.Comma(int64(tl.Y)))
	fmt.Fprintf(&sb, "  cell=%s", humanize.FtoaWithDigits(v.ScaleFactor(), 4))
	if v.Offset != (graph.Coord{}) {
		fmt.Fprintf(&sb, "  offset(%d,%d)", v.Offset.X, v.Offset.Y)
	}
	if len(labels) > 0 {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(labels, "  "))
	}
	return sb.String()
}
