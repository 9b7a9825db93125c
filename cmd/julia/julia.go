package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/complex-fractal/pkg/complexnum"
	"github.com/willbeason/complex-fractal/pkg/orbit"
	"github.com/willbeason/complex-fractal/pkg/render"
	"github.com/willbeason/complex-fractal/pkg/transforms"
)

func mainCmd() *cobra.Command {
	opts := render.DefaultOptions(render.Julia)
	outDir := "out"

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render the Julia set of an escape-time fractal for a fixed constant",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts, outDir)
		},
	}

	opts.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&outDir, "out", "o", outDir, "directory to write the image to")

	cmd.AddCommand(orbitCmd())

	return cmd
}

func runCmd(cmd *cobra.Command, opts render.Options, outDir string) error {
	err := opts.Validate()
	if err != nil {
		return err
	}
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cmd.Printf("Rendering %s with c = %v\n", opts.Equation, opts.C())

	brightness, stats, err := render.Brightness(cmd.Context(), opts)
	if err != nil {
		return err
	}
	cmd.Println("Max brightness", stats.MaxBrightness)
	if stats.Degenerate > 0 {
		cmd.Println("Degenerate samples", stats.Degenerate)
	}

	path, err := render.WritePNG(outDir, render.Image(brightness, opts.Width, opts.Height))
	if err != nil {
		return err
	}
	cmd.Println("Wrote", path)

	return nil
}

// orbitCmd prints the orbit of a single starting point.
func orbitCmd() *cobra.Command {
	var zRe, zIm, cRe, cIm float64
	equation := "mandelbrot"
	steps := 20

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Print successive iterates of a single point",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			eq, err := transforms.Lookup(equation)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			path, err := orbit.Path(complexnum.New(zRe, zIm), complexnum.New(cRe, cIm), eq, steps)
			for i, z := range path {
				cmd.Printf("%d\t%v\n", i+1, z)
			}
			return err
		},
	}

	cmd.Flags().Float64Var(&zRe, "z-re", zRe, "real part of the starting value")
	cmd.Flags().Float64Var(&zIm, "z-im", zIm, "imaginary part of the starting value")
	cmd.Flags().Float64Var(&cRe, "c-re", cRe, "real part of the constant c")
	cmd.Flags().Float64Var(&cIm, "c-im", cIm, "imaginary part of the constant c")
	cmd.Flags().StringVarP(&equation, "equation", "e", equation, "iteration equation")
	cmd.Flags().IntVarP(&steps, "steps", "n", steps, "number of iterates to print")

	return cmd
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
