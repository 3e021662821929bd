// Command vecraster renders a scene description into a dithered PNG.
//
// Usage:
//
//	vecraster <input-path> <output-path>
//
// The input file uses the tiny grammar documented in
// internal/sceneformat. vecraster exits 0 on success and non-zero with a
// diagnostic on stderr on any parse or I/O failure.
package main

import (
	"fmt"
	"os"

	gg "github.com/aebi/vecraster"
	"github.com/aebi/vecraster/internal/sceneformat"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input-path> <output-path>\n", os.Args[0])
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "vecraster: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	scene, err := sceneformat.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing scene: %w", err)
	}

	doc := gg.NewDocument(scene.Width, scene.Height)
	for _, spec := range scene.Shapes {
		path := buildPath(spec.Commands)
		color := gg.RGBA2(spec.R, spec.G, spec.B, spec.A)
		if spec.Stroke {
			doc.Stroke(path, gg.NewSolidPaint(color), spec.Width)
		} else {
			doc.Fill(path, gg.NewSolidPaint(color))
		}
	}

	pm := gg.Render(doc.Scene())

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := pm.EncodeDithered(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func buildPath(commands []sceneformat.Command) *gg.Path {
	p := gg.NewPath()
	for _, c := range commands {
		switch c.Op {
		case 'M':
			p.MoveTo(c.X, c.Y)
		case 'L':
			p.LineTo(c.X, c.Y)
		case 'Z':
			p.Close()
		}
	}
	return p
}
