package visualize_test

import (
	"strings"
	"testing"

	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/overworld"
	"github.com/zora-rando/zora/pkg/solver"
	"github.com/zora-rando/zora/pkg/validate"
	"github.com/zora-rando/zora/pkg/visualize"
	"github.com/zora-rando/zora/pkg/worldmap"
)

func TestRenderPartitionSVG_ProducesWellFormedSVG(t *testing.T) {
	g := overworld.NewAdjacencyGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	p := g.PartitionAcrossBaitBlocker(2, 3)

	data := visualize.RenderPartitionSVG(g, p, 2, 3, visualize.DefaultSVGOptions())

	svgStr := string(data)
	if !strings.Contains(svgStr, "<svg") || !strings.Contains(svgStr, "</svg>") {
		t.Fatalf("output is not well-formed SVG: %q", svgStr)
	}
}

func TestRenderConstraintGraphSVG_ProducesWellFormedSVG(t *testing.T) {
	p := solver.NewProblem[worldmap.Location, item.Kind]()
	keys := []worldmap.Location{worldmap.OverworldCave(0, 0), worldmap.OverworldCave(1, 0)}
	values := []item.Kind{item.KindSwordWood, item.KindBow}
	p.AddPermutationProblem(keys, values)
	p.ForbidAll(keys[0], []item.Kind{item.KindBow})

	data := visualize.RenderConstraintGraphSVG(p, visualize.DefaultSVGOptions())

	svgStr := string(data)
	if !strings.Contains(svgStr, "<svg") || !strings.Contains(svgStr, "</svg>") {
		t.Fatalf("output is not well-formed SVG: %q", svgStr)
	}
	if !strings.Contains(svgStr, "stroke-dasharray:4,4") {
		t.Fatalf("expected a dashed forbidden edge, got %q", svgStr)
	}
}

func TestExportReportJSON_RendersItemNamesNotRawKinds(t *testing.T) {
	r := &validate.Report{
		Passed:                false,
		MissingItems:          []item.Kind{item.KindBow},
		UnreachedDestinations: []string{"screen:7"},
	}

	data, err := visualize.ExportReportJSON(r)
	if err != nil {
		t.Fatalf("ExportReportJSON: %v", err)
	}
	if !strings.Contains(string(data), "Bow") {
		t.Fatalf("expected rendered item name \"Bow\" in output, got %q", data)
	}
	if !strings.Contains(string(data), "screen:7") {
		t.Fatalf("expected unreached destination in output, got %q", data)
	}
}
