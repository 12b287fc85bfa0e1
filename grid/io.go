package grid

import (
	"bufio"
	"fmt"
	"io"
)

// WriteInterior writes the interior values of g to w row-major: one line
// per interior row, %g-formatted values each followed by a single space,
// matching the persistence format consumed by downstream tooling.
// Border cells are not emitted. Complexity: O(N×M).
func (g *Grid) WriteInterior(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 1; i <= g.n; i++ {
		row := g.Row(i)
		for j := 1; j <= g.m; j++ {
			if _, err := fmt.Fprintf(bw, "%g ", row[j]); err != nil {
				return fmt.Errorf("grid: write interior: %w", err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return fmt.Errorf("grid: write interior: %w", err)
		}
	}

	return bw.Flush()
}
