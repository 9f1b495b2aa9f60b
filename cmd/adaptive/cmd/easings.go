package cmd

import (
	"flag"
	"fmt"

	"github.com/go-drift/adaptive/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "easings",
		Short: "List easing functions with sampled values",
		Long: `List every easing function with its value sampled along the curve.

Each row shows one easing evaluated at evenly spaced points between 0
and 1. The back and elastic families swing past their endpoints, so some
of their samples fall outside [0, 1].

The names in the first column are the ones motion theme files use:

  fade:
    timed:
      duration: 200ms
      easing: ease-out-cubic`,
		Usage: "adaptive easings [--samples N]",
		Run:   runEasings,
	})
}

func runEasings(args []string) error {
	fs := flag.NewFlagSet("easings", flag.ContinueOnError)
	samples := fs.Int("samples", 4, "sample steps between 0 and 1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *samples < 1 || *samples > 16 {
		return fmt.Errorf("samples must be between 1 and 16, got %d", *samples)
	}

	header := fmt.Sprintf("%-22s", "EASING")
	for i := 0; i <= *samples; i++ {
		header += fmt.Sprintf("%8.2f", float64(i)/float64(*samples))
	}
	fmt.Println(header)

	for _, easing := range animation.Easings() {
		row := fmt.Sprintf("%-22s", easing)
		for i := 0; i <= *samples; i++ {
			t := float64(i) / float64(*samples)
			row += fmt.Sprintf("%8.3f", easing.Ease(t))
		}
		fmt.Println(row)
	}
	return nil
}
