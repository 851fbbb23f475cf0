package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/presize/internal/diagram"
	"github.com/alexiusacademia/presize/internal/sizing"
	"github.com/spf13/cobra"
)

type member struct {
	use   string
	short string
	long  string
	key   string
}

var members = []member{
	{
		use:   "slab",
		short: "Size the typical floor slab",
		long: `Size the typical two-way slab from the short side of the largest
panel: h = L/35, rounded up to 10 mm, 100 mm minimum.`,
		key: sizing.TableSlab,
	},
	{
		use:   "beam",
		short: "Size main and secondary beams",
		long: `Size beams from the longest span: main beams h = L/12, secondary
beams h = L/16, rounded up to 50 mm. Widths are 0.4h rounded up to 50 mm,
200 mm minimum.`,
		key: sizing.TableBeam,
	},
	{
		use:   "column",
		short: "Size columns per group of three storeys",
		long: `Size columns from the axial load N = 1.15 q A n, where n is the
number of storeys above the group and A the tributary area of one column.
The required section is N/Rb. Groups run from the ground up.`,
		key: sizing.TableColumn,
	},
	{
		use:   "wall",
		short: "Size shear walls",
		long: `Size shear walls from the tallest storey: t = H/20, rounded up to
50 mm, 200 mm minimum.`,
		key: sizing.TableWall,
	},
	{
		use:   "foundation",
		short: "Size the pile group or pad footing",
		long: `Size the foundation under the ground column for N_f = 1.1 N.

Piles:    n = ceil(1.2 N_f / (P g)), cap laid out at 3d spacing
Shallow:  B = sqrt(N_f / (R - 20)), rounded up to 0.1 m`,
		key: sizing.TableFoundation,
	},
}

func init() {
	for _, m := range members {
		c := &cobra.Command{
			Use:   m.use,
			Short: m.short,
			Long:  m.long,
			RunE:  runMember(m.key),
		}
		addProjectFlags(c)
		rootCmd.AddCommand(c)
	}
}

func runMember(key string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}
		if key == sizing.TableWall {
			p.ShearWalls = true
		}
		s, err := sizing.Run(p)
		if err != nil {
			return err
		}

		t, _ := s.Table(key)
		printHeader(strings.ToUpper(t.Title) + " SIZING - TCVN")
		printInputs(s)
		fmt.Println(diagram.RenderTable(t))

		switch key {
		case sizing.TableColumn:
			if len(s.Columns) == 0 {
				break
			}
			fmt.Printf("  Peak axial load: %.2f kN at %s\n\n", sizing.PeakColumnLoad(s.Columns), s.Columns[0].Group)
			fmt.Println(diagram.DrawLoadChart(s.Columns))
			fmt.Println()
		case sizing.TableFoundation:
			fmt.Printf("  Foundation scheme: %s\n", s.Foundation.Description)
			fmt.Printf("  Design load N_f = %.2f kN\n\n", s.Foundation.DesignLoad)
		}
		return nil
	}
}
