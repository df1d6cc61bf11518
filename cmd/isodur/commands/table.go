package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mash-protocol/isodur/pkg/units"
)

// RunTable prints the unit table in table order.
func RunTable(table *units.Table, w io.Writer) error {
	fmt.Fprintf(w, "Unit table (schema %s)\n\n", table.Version())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tMILLISECONDS\tCONVERT TO\tBUCKET\tDESIGNATOR")
	for _, d := range table.Descriptors() {
		convert := "-"
		if d.HasConvertTo {
			convert = d.ConvertTo.String()
		}
		bucket := d.Precision.String()
		if bucket == "" {
			bucket = "-"
		}
		designator := "-"
		if d.Character != 0 {
			designator = string(d.Character)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			d.Unit,
			strconv.FormatFloat(d.Milliseconds, 'f', -1, 64),
			convert,
			bucket,
			designator,
		)
	}
	return tw.Flush()
}
