package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/sizing"
)

// Project inputs shared by every sizing command. Flags override the
// project file, which overrides the defaults.
var (
	projectFile string

	inName       string
	inType       string
	inShearWalls bool

	inGridX   string
	inGridY   string
	inHeights string
	inFloors  int
	inTypical float64

	inConcrete string
	inRb       float64
	inSteel    string
	inRs       float64
	inStirrup  string
	inRsw      float64
	inSlabLoad float64

	inShape       string
	inOrientation string
	inColWidth    float64

	inFoundation   string
	inPileType     string
	inPileSize     float64
	inPileCapacity float64
	inSoil         float64
)

func addProjectFlags(cmd *cobra.Command) {
	d := project.Default()
	f := cmd.Flags()

	f.StringVarP(&projectFile, "file", "f", "", "Project YAML file")

	f.StringVar(&inName, "name", d.Name, "Project name")
	f.StringVar(&inType, "type", d.BuildingType, "Building type (sets the default floor load)")
	f.BoolVar(&inShearWalls, "shear-walls", false, "Size shear walls")

	f.StringVarP(&inGridX, "grid-x", "x", project.FormatList(d.Grid.X), "Spans along X (m), e.g. \"6x3, 7\"")
	f.StringVarP(&inGridY, "grid-y", "y", project.FormatList(d.Grid.Y), "Spans along Y (m)")
	f.StringVar(&inHeights, "heights", "", "Storey heights from the ground up (m), e.g. \"4.5, 3.3x9\"")
	f.IntVarP(&inFloors, "floors", "n", d.Floors, "Number of storeys when --heights is not given")
	f.Float64Var(&inTypical, "typical-height", d.TypicalHeight, "Storey height when --heights is not given (m)")

	f.StringVar(&inConcrete, "concrete", d.Materials.Concrete, "Concrete grade")
	f.Float64Var(&inRb, "rb", 0, "Concrete design strength Rb (MPa), overrides the grade")
	f.StringVar(&inSteel, "steel", d.Materials.MainSteel, "Main steel grade")
	f.Float64Var(&inRs, "rs", 0, "Main steel design strength Rs (MPa), overrides the grade")
	f.StringVar(&inStirrup, "stirrup", d.Materials.Stirrup, "Stirrup steel grade")
	f.Float64Var(&inRsw, "rsw", 0, "Stirrup design strength Rsw (MPa), overrides the grade")
	f.Float64VarP(&inSlabLoad, "load", "q", 0, "Equivalent floor load q (kN/m2), overrides the building type")

	f.StringVar(&inShape, "column-shape", string(d.Column.Shape), "Column shape: rectangular or square")
	f.StringVar(&inOrientation, "orientation", string(d.Column.Orientation), "Long side of rectangular columns: along-y or along-x")
	f.Float64Var(&inColWidth, "column-width", d.Column.FixedWidth, "Fixed width b of rectangular columns (mm)")

	f.StringVar(&inFoundation, "foundation", string(d.Foundation.Type), "Foundation type: pile or shallow")
	f.StringVar(&inPileType, "pile-type", d.Foundation.PileType, "Pile type from the catalog")
	f.Float64Var(&inPileSize, "pile-size", 0, "Custom pile size (mm)")
	f.Float64Var(&inPileCapacity, "pile-capacity", d.Foundation.PileCapacity, "Pile design capacity P (T)")
	f.Float64Var(&inSoil, "soil", d.Foundation.SoilCapacity, "Soil bearing capacity R (kg/cm2)")
}

// loadProject builds the parameters for cmd from its file and flags.
func loadProject(cmd *cobra.Command) (project.Parameters, error) {
	p := project.Default()
	if projectFile != "" {
		var err error
		if p, err = project.Load(projectFile); err != nil {
			return p, err
		}
	}

	var err error
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		err = applyFlag(&p, fl.Name)
	})

	// A storey count regenerates the heights unless they are given too.
	fs := cmd.Flags()
	if (fs.Changed("floors") || fs.Changed("typical-height")) && !fs.Changed("heights") {
		p.FloorHeights = nil
	}
	return p, err
}

func applyFlag(p *project.Parameters, name string) error {
	var err error
	switch name {
	case "name":
		p.Name = inName
	case "type":
		p.BuildingType = inType
	case "shear-walls":
		p.ShearWalls = inShearWalls
	case "grid-x":
		p.Grid.X, err = project.ParseList(inGridX)
	case "grid-y":
		p.Grid.Y, err = project.ParseList(inGridY)
	case "heights":
		p.FloorHeights, err = project.ParseList(inHeights)
	case "floors":
		p.Floors = inFloors
	case "typical-height":
		p.TypicalHeight = inTypical
	case "concrete":
		p.Materials.Concrete = inConcrete
	case "rb":
		p.Materials.Rb = inRb
	case "steel":
		p.Materials.MainSteel = inSteel
	case "rs":
		p.Materials.Rs = inRs
	case "stirrup":
		p.Materials.Stirrup = inStirrup
	case "rsw":
		p.Materials.Rsw = inRsw
	case "load":
		p.SlabLoad = inSlabLoad
	case "column-shape":
		p.Column.Shape = project.ColumnShape(inShape)
	case "orientation":
		p.Column.Orientation = project.Orientation(inOrientation)
	case "column-width":
		p.Column.FixedWidth = inColWidth
	case "foundation":
		p.Foundation.Type = project.FoundationType(inFoundation)
	case "pile-type":
		p.Foundation.PileType = inPileType
	case "pile-size":
		p.Foundation.PileType = ""
		p.Foundation.PileSize = inPileSize
	case "pile-capacity":
		p.Foundation.PileCapacity = inPileCapacity
	case "soil":
		p.Foundation.SoilCapacity = inSoil
	}
	if err != nil {
		return fmt.Errorf("--%s: %w", name, err)
	}
	return nil
}

// runSchedule loads the project for cmd and sizes it.
func runSchedule(cmd *cobra.Command) (*sizing.Schedule, error) {
	p, err := loadProject(cmd)
	if err != nil {
		return nil, err
	}
	return sizing.Run(p)
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printInputs(s *sizing.Schedule) {
	p := s.Parameters
	m := p.Materials

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Project:\t%s\n", p.Name)
	fmt.Fprintf(w, "  Building type:\t%s\n", p.BuildingType)
	fmt.Fprintf(w, "  Grid X (m):\t%s\n", project.FormatList(p.Grid.X))
	fmt.Fprintf(w, "  Grid Y (m):\t%s\n", project.FormatList(p.Grid.Y))
	fmt.Fprintf(w, "  Storeys:\t%d (H = %.2f m)\n", p.Floors, p.TotalHeight())
	fmt.Fprintf(w, "  Concrete:\t%s (Rb = %g MPa)\n", m.Concrete, m.Rb)
	fmt.Fprintf(w, "  Main steel:\t%s (Rs = %g MPa)\n", m.MainSteel, m.Rs)
	fmt.Fprintf(w, "  Stirrups:\t%s (Rsw = %g MPa)\n", m.Stirrup, m.Rsw)
	fmt.Fprintf(w, "  Floor load q:\t%g kN/m2\n", p.SlabLoad)
	fmt.Fprintf(w, "  Tributary area:\t%.2f m2\n", p.TributaryArea())
	w.Flush()
	fmt.Println()
}
