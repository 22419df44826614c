package convert

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"isis-core/kind"
)

// WriteMatrix prints the strategy of every pair as a table, sources as
// rows and destinations as columns. See Strategy.Symbol for the marks.
func (r *Registry) WriteMatrix(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	kinds := kind.All()

	header := make([]string, 0, len(kinds)+1)
	header = append(header, "from\\to")
	for _, k := range kinds {
		header = append(header, k.TypeName())
	}

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}

	for _, src := range kinds {
		row := make([]string, 0, len(kinds)+1)
		row = append(row, src.TypeName())

		for _, dst := range kinds {
			strategy := StrategyNone
			if c, ok := r.Get(src, dst); ok {
				strategy = c.Strategy()
			}

			row = append(row, string(strategy.Symbol()))
		}

		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// Matrix returns the table written by WriteMatrix.
func (r *Registry) Matrix() string {
	var sb strings.Builder
	_ = r.WriteMatrix(&sb)

	return sb.String()
}
