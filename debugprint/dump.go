package debugprint

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wfc/wfc"
	"github.com/olekukonko/tablewriter"
)

// DumpArray renders tp's decided grid (tp.ToValueArray) as a table, one row
// per Y (per Z slice for D>1 topologies), one column per X. Undecided or
// contradictory cells print as "?" and "!" respectively.
//
// Complexity: O(cells).
func DumpArray(w io.Writer, tp *wfc.TilePropagator) {
	topo := tp.TileTopology()
	values := tp.ToValueArray()
	statuses := tp.ToArray()

	for z := 0; z < topo.D; z++ {
		if topo.D > 1 {
			fmt.Fprintf(w, "z=%d\n", z)
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(headerRow(topo.W))
		table.SetAutoFormatHeaders(false)
		table.SetAlignment(tablewriter.ALIGN_CENTER)

		for y := 0; y < topo.H; y++ {
			row := make([]string, topo.W)
			for x := 0; x < topo.W; x++ {
				idx := topo.Index(x, y, z)
				status := statuses[idx]
				switch {
				case status == wfc.StatusContradiction:
					row[x] = "!"
				case status == wfc.StatusUndecided:
					row[x] = "?"
				default:
					row[x] = values[idx].ID()
				}
			}
			table.Append(row)
		}
		table.Render()
	}
}

// DumpWave renders tp's per-cell possibility sets (tp.ToArraySets) as a
// table: each cell shows its remaining pattern-id count, or the single id
// once decided. Useful for inspecting a contradiction or a mid-solve
// snapshot that DumpArray would otherwise print as a wall of "?".
//
// Complexity: O(cells*P) worst case, dominated by ToArraySets.
func DumpWave(w io.Writer, tp *wfc.TilePropagator) {
	topo := tp.TileTopology()
	sets := tp.ToArraySets()

	for z := 0; z < topo.D; z++ {
		if topo.D > 1 {
			fmt.Fprintf(w, "z=%d\n", z)
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(headerRow(topo.W))
		table.SetAutoFormatHeaders(false)
		table.SetAlignment(tablewriter.ALIGN_CENTER)

		for y := 0; y < topo.H; y++ {
			row := make([]string, topo.W)
			for x := 0; x < topo.W; x++ {
				idx := topo.Index(x, y, z)
				ids := sets[idx]
				switch len(ids) {
				case 0:
					row[x] = "!"
				case 1:
					row[x] = strconv.Itoa(ids[0])
				default:
					row[x] = fmt.Sprintf("(%d)", len(ids))
				}
			}
			table.Append(row)
		}
		table.Render()
	}
}

func headerRow(width int) []string {
	h := make([]string, width)
	for x := range h {
		h[x] = strconv.Itoa(x)
	}

	return h
}
