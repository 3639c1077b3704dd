package weightgrid

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes the weights as a right-aligned table, one grid row per line.
// The cursor is not shown.
func (g *Grid) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if _, err := fmt.Fprintf(tw, "%d\t", g.cells[y][x]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	return tw.Flush()
}
