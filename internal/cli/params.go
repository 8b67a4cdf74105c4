package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// defaultParams returns the compiled-in parameter defaults. Product
// dimensions and weight stay zero: they must come from flags or a file.
func defaultParams() crate.Params {
	return crate.Params{
		ClearanceSide:       2,
		ClearanceAbove:      1.5,
		GroundClearance:     0,
		SheathingThickness:  0.25,
		CleatThickness:      0.75,
		CleatMemberWidth:    3.5,
		FloorboardThickness: 1.5,
		LumberWidths:        []float64{11.25, 9.25, 7.25, 5.5, 3.5, 2.5, 1.5},
		MinCustomWidth:      2.5,
		MaxMiddleGap:        0.25,
	}
}

// paramFlags binds crate parameters onto a cobra command. Flag values start
// from defaultParams; a --params TOML file, when given, replaces the base
// and explicitly set flags win over the file.
type paramFlags struct {
	params crate.Params
	file   string
}

// register adds every parameter flag to cmd.
func (f *paramFlags) register(cmd *cobra.Command) {
	f.params = defaultParams()
	fl := cmd.Flags()

	fl.StringVar(&f.file, "params", "", "TOML file with crate parameters")

	fl.Float64Var(&f.params.ProductLength, "length", 0, "product length (in)")
	fl.Float64Var(&f.params.ProductWidth, "width", 0, "product width (in)")
	fl.Float64Var(&f.params.ProductHeight, "height", 0, "product height (in)")
	fl.Float64Var(&f.params.ProductWeight, "weight", 0, "product weight (lb)")

	fl.Float64Var(&f.params.ClearanceSide, "clearance-side", f.params.ClearanceSide, "side clearance around product (in)")
	fl.Float64Var(&f.params.ClearanceAbove, "clearance-above", f.params.ClearanceAbove, "clearance above product (in)")
	fl.Float64Var(&f.params.GroundClearance, "ground-clearance", f.params.GroundClearance, "required clearance under floorboards (in)")

	fl.Float64Var(&f.params.SheathingThickness, "sheathing", f.params.SheathingThickness, "plywood sheathing thickness (in)")
	fl.Float64Var(&f.params.CleatThickness, "cleat-thickness", f.params.CleatThickness, "cleat stock thickness (in)")
	fl.Float64Var(&f.params.CleatMemberWidth, "cleat-width", f.params.CleatMemberWidth, "cleat member width (in)")
	fl.Float64Var(&f.params.FloorboardThickness, "floorboard-thickness", f.params.FloorboardThickness, "floorboard thickness (in)")

	fl.Float64SliceVar(&f.params.LumberWidths, "lumber", f.params.LumberWidths, "floorboard lumber width catalog (in)")
	fl.Float64Var(&f.params.MinCustomWidth, "min-custom", f.params.MinCustomWidth, "minimum custom floorboard width (in)")
	fl.BoolVar(&f.params.ForceCustomBoard, "force-custom", false, "always fill the floor remainder with a custom board")
	fl.Float64Var(&f.params.MaxMiddleGap, "max-gap", f.params.MaxMiddleGap, "maximum acceptable middle floor gap (in)")
	fl.BoolVar(&f.params.AllowSmallSkids, "small-skids", false, "permit 3x4 skids for light loads")
}

// resolve produces the final parameter set: file base when given, with any
// explicitly set flags layered on top.
func (f *paramFlags) resolve(cmd *cobra.Command) (crate.Params, error) {
	if f.file == "" {
		return f.params, nil
	}

	fromFlags := f.params
	base := defaultParams()
	data, err := os.ReadFile(f.file)
	if err != nil {
		return crate.Params{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", f.file)
	}
	if err := toml.Unmarshal(data, &base); err != nil {
		return crate.Params{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding %s", f.file)
	}

	overrides := map[string]func(){
		"length":               func() { base.ProductLength = fromFlags.ProductLength },
		"width":                func() { base.ProductWidth = fromFlags.ProductWidth },
		"height":               func() { base.ProductHeight = fromFlags.ProductHeight },
		"weight":               func() { base.ProductWeight = fromFlags.ProductWeight },
		"clearance-side":       func() { base.ClearanceSide = fromFlags.ClearanceSide },
		"clearance-above":      func() { base.ClearanceAbove = fromFlags.ClearanceAbove },
		"ground-clearance":     func() { base.GroundClearance = fromFlags.GroundClearance },
		"sheathing":            func() { base.SheathingThickness = fromFlags.SheathingThickness },
		"cleat-thickness":      func() { base.CleatThickness = fromFlags.CleatThickness },
		"cleat-width":          func() { base.CleatMemberWidth = fromFlags.CleatMemberWidth },
		"floorboard-thickness": func() { base.FloorboardThickness = fromFlags.FloorboardThickness },
		"lumber":               func() { base.LumberWidths = fromFlags.LumberWidths },
		"min-custom":           func() { base.MinCustomWidth = fromFlags.MinCustomWidth },
		"force-custom":         func() { base.ForceCustomBoard = fromFlags.ForceCustomBoard },
		"max-gap":              func() { base.MaxMiddleGap = fromFlags.MaxMiddleGap },
		"small-skids":          func() { base.AllowSmallSkids = fromFlags.AllowSmallSkids },
	}
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply()
		}
	})

	return base, nil
}
