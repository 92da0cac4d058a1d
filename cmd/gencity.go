package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tourclimb/internal/render"
	"github.com/cwbudde/tourclimb/internal/tour"
)

var (
	genWidth  int
	genHeight int
)

var gencityCmd = &cobra.Command{
	Use:   "gencity <number of cities> <random seed> <output file>",
	Short: "Generate a random city file",
	Long: `Writes <number of cities> cities with random coordinates to a binary city
file. Coordinates keep a 5-cell margin inside the map so labels fit.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE:         runGencity,
}

func init() {
	gencityCmd.Flags().IntVar(&genWidth, "width", render.DefaultWidth, "Map width the cities must fit")
	gencityCmd.Flags().IntVar(&genHeight, "height", render.DefaultHeight, "Map height the cities must fit")
	rootCmd.AddCommand(gencityCmd)
}

func runGencity(cmd *cobra.Command, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	seed, err := parseInt(args[1])
	if err != nil {
		return err
	}

	cities, err := tour.GenerateCities(tour.GenerateOptions{
		Count:  n,
		Seed:   int64(seed),
		Width:  genWidth,
		Height: genHeight,
	})
	if err != nil {
		return err
	}

	if err := tour.SaveCities(args[2], cities); err != nil {
		return err
	}

	slog.Info("Generated cities", "count", n, "seed", seed, "path", args[2])
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cities to %s\n", n, args[2])
	return nil
}
