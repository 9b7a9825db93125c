package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/complex-fractal/pkg/render"
)

func mainCmd() *cobra.Command {
	opts := render.DefaultOptions(render.Parameter)
	opts.CenterRe = -0.5
	opts.ViewHeight = 2.5
	outDir := "out"

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render the parameter plane of an escape-time fractal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts, outDir)
		},
	}

	opts.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&outDir, "out", "o", outDir, "directory to write the image to")

	return cmd
}

func runCmd(cmd *cobra.Command, opts render.Options, outDir string) error {
	err := opts.Validate()
	if err != nil {
		return err
	}
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

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

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
