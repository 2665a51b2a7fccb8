package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/io"
	"github.com/matzehuels/casement/pkg/window"
)

// specFlags binds the window spec to command flags. Only flags the user
// actually set override the file and config values.
type specFlags struct {
	specs     window.WindowSpecs
	catalogue bool
}

func (f *specFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.specs.Height, "height", 0, "window height in inches")
	fl.Float64Var(&f.specs.Width, "width", 0, "window width in inches")
	fl.StringVar(&f.specs.ProfileSystem, "profile", "", "profile system (e.g. \"29MM SLIDER\")")
	fl.StringVar((*string)(&f.specs.WindowType), "type", "", "window type: Normal, Slider")
	fl.StringVar(&f.specs.Design, "design", "", "design label (e.g. \"SLIDING 2 SHUTTER\")")
	fl.StringVar(&f.specs.GlassType, "glass", "", "glass description")
	fl.BoolVar(&f.specs.Mesh, "mesh", false, "add an insect mesh")
	fl.BoolVar(&f.specs.Grill, "grill", false, "add a grill")
	fl.StringVar(&f.specs.LockingType, "lock", "", "locking type")
	fl.IntVar(&f.specs.Quantity, "quantity", 0, "number of windows")
	fl.Float64Var(&f.specs.Rate, "rate", 0, "rate per square foot")
	fl.StringVar(&f.specs.Project, "project", "", "project name")
	fl.StringVar(&f.specs.Finish, "finish", "", "surface finish")
	fl.StringVar(&f.specs.Location, "location", "", "location label")
	fl.StringVar(&f.specs.Code, "code", "", "window code")
	fl.StringVar(&f.specs.HardwareBrand, "hardware", "", "hardware brand")
	fl.BoolVar(&f.catalogue, "strict", false, "reject profiles, designs and locks outside the catalogue")

	_ = cmd.RegisterFlagCompletionFunc("profile", fixedCompletions(window.Profiles))
	_ = cmd.RegisterFlagCompletionFunc("design", fixedCompletions(window.Designs))
	_ = cmd.RegisterFlagCompletionFunc("lock", fixedCompletions(window.LockingTypes))
	_ = cmd.RegisterFlagCompletionFunc("type", fixedCompletions([]string{string(window.Normal), string(window.Slider)}))
}

// resolve builds the effective spec: base, then every key present in the
// file at path (if any), then every flag that was set.
func (f *specFlags) resolve(cmd *cobra.Command, path string, base window.WindowSpecs) (window.WindowSpecs, error) {
	s := base
	if path != "" {
		var err error
		if s, err = io.ImportSpecsOver(path, base); err != nil {
			return base, err
		}
	}

	changed := cmd.Flags().Changed
	set := func(name string, apply func()) {
		if changed(name) {
			apply()
		}
	}
	set("height", func() { s.Height = f.specs.Height })
	set("width", func() { s.Width = f.specs.Width })
	set("profile", func() { s.ProfileSystem = f.specs.ProfileSystem })
	set("type", func() { s.WindowType = f.specs.WindowType })
	set("design", func() { s.Design = f.specs.Design })
	set("glass", func() { s.GlassType = f.specs.GlassType })
	set("mesh", func() { s.Mesh = f.specs.Mesh })
	set("grill", func() { s.Grill = f.specs.Grill })
	set("lock", func() { s.LockingType = f.specs.LockingType })
	set("quantity", func() { s.Quantity = f.specs.Quantity })
	set("rate", func() { s.Rate = f.specs.Rate })
	set("project", func() { s.Project = f.specs.Project })
	set("finish", func() { s.Finish = f.specs.Finish })
	set("location", func() { s.Location = f.specs.Location })
	set("code", func() { s.Code = f.specs.Code })
	set("hardware", func() { s.HardwareBrand = f.specs.HardwareBrand })

	if f.catalogue {
		if err := s.ValidateCatalogue(); err != nil {
			return s, err
		}
	}
	return s, nil
}

func fixedCompletions(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// specArg returns the optional spec file argument.
func specArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
