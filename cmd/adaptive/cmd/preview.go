package cmd

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/adaptive/cmd/adaptive/internal/plot"
	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/motion"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render easing and motion curves to a PNG contact sheet",
		Long: `Render every easing function as a curve cell in a PNG contact sheet.

With --theme, the presets of a motion theme YAML file are appended to
the sheet: timed presets show their easing curve, spring presets show
the value over the spring's estimated settle time.

Each cell plots the value over normalized time. The dim horizontal lines
mark the values 0 and 1, so undershoot and overshoot are visible where a
curve leaves the band.

Examples:
  adaptive preview --out curves.png
  adaptive preview --theme motion.yaml --columns 4 --cell 200`,
		Usage: "adaptive preview [--out FILE] [--theme FILE] [--columns N] [--cell N]",
		Run:   runPreview,
	})
}

// previewCell is one named curve on the contact sheet.
type previewCell struct {
	name  string
	curve func(t float64) float64
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	out := fs.String("out", "easings.png", "output PNG file")
	themePath := fs.String("theme", "", "motion theme YAML whose presets are appended to the sheet")
	columns := fs.Int("columns", 6, "cells per row")
	cellSize := fs.Int("cell", 160, "cell size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *columns < 1 {
		return fmt.Errorf("columns must be >= 1, got %d", *columns)
	}
	if *cellSize < 48 {
		return fmt.Errorf("cell size must be >= 48, got %d", *cellSize)
	}

	cells := easingCells()
	if *themePath != "" {
		themeCells, err := motionCells(*themePath)
		if err != nil {
			return err
		}
		cells = append(cells, themeCells...)
	}

	sheet, err := renderSheet(cells, *columns, *cellSize)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d curves to %s\n", len(cells), *out)
	return nil
}

func easingCells() []previewCell {
	easings := animation.Easings()
	cells := make([]previewCell, 0, len(easings))
	for _, easing := range easings {
		cells = append(cells, previewCell{name: easing.String(), curve: easing.Func()})
	}
	return cells
}

// motionCells loads a theme and turns each preset into a cell, in name
// order.
func motionCells(path string) ([]previewCell, error) {
	theme, err := motion.LoadTheme(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(theme))
	for name := range theme {
		names = append(names, name)
	}
	sort.Strings(names)

	host := animation.NewClockHost()
	cells := make([]previewCell, 0, len(names))
	for _, name := range names {
		anim := theme[name].Build(host, 0, 1, nil)
		if anim == nil {
			return nil, fmt.Errorf("motion preset %q did not build", name)
		}
		cells = append(cells, previewCell{name: name, curve: presetCurve(anim)})
	}
	return cells, nil
}

// presetCurve maps an animation's run onto t in [0, 1]. Animations without
// a finite duration are shown over one second.
func presetCurve(anim animation.Animator) func(t float64) float64 {
	window := anim.EstimateDuration()
	if window <= 0 || window == animation.DurationInfinite {
		window = time.Second
	}
	return func(t float64) float64 {
		return anim.CalculateValue(time.Duration(t * float64(window)))
	}
}

// renderSheet rasterizes the cells concurrently and composes them into a
// single grid image.
func renderSheet(cells []previewCell, columns, cellSize int) (*image.NRGBA, error) {
	p := plot.New(cellSize, cellSize)

	rendered := make([]*image.NRGBA, len(cells))
	var g errgroup.Group
	for i, cell := range cells {
		g.Go(func() error {
			img, err := p.Render(cell.curve)
			if err != nil {
				return fmt.Errorf("cell %q: %w", cell.name, err)
			}
			label(img, cell.name)
			rendered[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := (len(cells) + columns - 1) / columns
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*cellSize, rows*cellSize))
	for i, img := range rendered {
		x := (i % columns) * cellSize
		y := (i / columns) * cellSize
		draw.Draw(sheet, image.Rect(x, y, x+cellSize, y+cellSize), img, image.Point{}, draw.Src)
	}
	return sheet, nil
}

// label draws the cell name into its bottom-left corner.
func label(img *image.NRGBA, name string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, img.Bounds().Dy()-6),
	}
	d.DrawString(name)
}
