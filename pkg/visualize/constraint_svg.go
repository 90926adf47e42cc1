package visualize

import (
	"bytes"
	"fmt"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/zora-rando/zora/pkg/solver"
)

// RenderConstraintGraphSVG draws a C5 solver.Problem as a two-column
// bipartite graph: keys on the left, values on the right, one dashed red
// edge per Forbid pair, exactly the "keys vs. values, forbidden edges
// dashed" diagnostic SPEC_FULL.md's Domain Stack item 3 describes.
//
// K and V need only be comparable; labels come from fmt's default
// Stringer-aware formatting, same as solver.sortKeysByString's
// determinism rule.
func RenderConstraintGraphSVG[K comparable, V comparable](p *solver.Problem[K, V], opts SVGOptions) []byte {
	opts.applyDefaults()

	keys, values, forbidden := p.Snapshot()
	keyLabels := stringify(keys)
	valueLabels := uniqueStringify(values)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	leftX := opts.Margin
	rightX := opts.Width - opts.Margin
	top := 60
	bottom := opts.Height - 40

	keyY := columnPositions(len(keyLabels), top, bottom)
	valueY := columnPositions(len(valueLabels), top, bottom)

	keyPos := make(map[string]int, len(keyLabels))
	for i, label := range keyLabels {
		keyPos[label] = keyY[i]
	}
	valuePos := make(map[string]int, len(valueLabels))
	for i, label := range valueLabels {
		valuePos[label] = valueY[i]
	}

	for _, e := range sortedForbidden(forbidden) {
		ky, ok1 := keyPos[e.key]
		vy, ok2 := valuePos[e.value]
		if !ok1 || !ok2 {
			continue
		}
		canvas.Line(leftX, ky, rightX, vy, "stroke:#f56565;stroke-width:1;stroke-dasharray:4,4;opacity:0.7")
	}

	for i, label := range keyLabels {
		canvas.Circle(leftX, keyY[i], opts.NodeRadius/2, "fill:#48bb78;stroke:#fff;stroke-width:1")
		canvas.Text(leftX-10, keyY[i]+4, label, "text-anchor:end;font-size:10px;font-family:monospace;fill:#e2e8f0")
	}
	for i, label := range valueLabels {
		canvas.Circle(rightX, valueY[i], opts.NodeRadius/2, "fill:#4299e1;stroke:#fff;stroke-width:1")
		canvas.Text(rightX+10, valueY[i]+4, label, "text-anchor:start;font-size:10px;font-family:monospace;fill:#e2e8f0")
	}

	drawLegend(canvas, opts, []legendEntry{
		{"Key (location)", "#48bb78"},
		{"Value (item kind)", "#4299e1"},
		{"Forbidden pairing", "#f56565"},
	})

	canvas.End()
	return buf.Bytes()
}

func columnPositions(n, top, bottom int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = (top + bottom) / 2
		return out
	}
	step := float64(bottom-top) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = top + int(float64(i)*step)
	}
	return out
}

func stringify[T any](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprintf("%v", x)
	}
	return out
}

func uniqueStringify[T any](xs []T) []string {
	seen := make(map[string]bool)
	var out []string
	for _, x := range xs {
		s := fmt.Sprintf("%v", x)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

type forbiddenEdgeLabel struct{ key, value string }

func sortedForbidden[K comparable, V comparable](edges []solver.ConstraintEdge[K, V]) []forbiddenEdgeLabel {
	out := make([]forbiddenEdgeLabel, len(edges))
	for i, e := range edges {
		out[i] = forbiddenEdgeLabel{key: fmt.Sprintf("%v", e.Key), value: fmt.Sprintf("%v", e.Value)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].key != out[j].key {
			return out[i].key < out[j].key
		}
		return out[i].value < out[j].value
	})
	return out
}
