// Command colorconv prints a color in every display format.
//
//	colorconv ff8000
//	colorconv -format hsl "rgb(255, 128, 0)"
//	colorconv -pick
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/config"
	"github.com/lixenwraith/hsv-picker/eyedropper"
	"github.com/lixenwraith/hsv-picker/picker"
)

var (
	formatFlag = flag.String("format", "", "Print only this format: hex, rgb, hsl, hsv")
	pickFlag   = flag.Bool("pick", false, "Sample a screen color with the configured eyedropper")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: colorconv [-format f] <color> | colorconv -pick\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var input string
	switch {
	case *pickFlag:
		sampled, err := pick()
		if err != nil {
			fmt.Fprintf(os.Stderr, "colorconv: %v\n", err)
			os.Exit(1)
		}
		input = sampled
	case flag.NArg() == 1:
		input = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := convert(os.Stdout, input, *formatFlag); err != nil {
		fmt.Fprintf(os.Stderr, "colorconv: %v\n", err)
		os.Exit(1)
	}
}

// convert writes input in one format, or every format followed by its darkness
func convert(w io.Writer, input, format string) error {
	c, _, err := colormodel.Parse(colormodel.NormalizeHex(input))
	if err != nil {
		return fmt.Errorf("%q: %w", input, err)
	}

	if format != "" {
		f, ok := colormodel.ParseFormat(format)
		if !ok {
			return fmt.Errorf("unknown format %q", format)
		}
		_, err := fmt.Fprintln(w, c.String(f))
		return err
	}

	for _, f := range colormodel.Formats {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f, c.String(f)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "dark: %t\n", c.IsDark())
	return err
}

// pick samples through a headless picker so the result goes through the same
// decoding as the TUI eyedropper
func pick() (string, error) {
	path, _ := config.DefaultPath()
	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	sampler := eyedropper.NewCommand(cfg.Eyedropper.Command, cfg.Eyedropper.Args, cfg.EyedropperTimeout())

	s, err := sample(context.Background(), sampler)
	if errors.Is(err, eyedropper.ErrUnavailable) {
		return "", fmt.Errorf("no eyedropper configured, set [eyedropper] command in %s", path)
	}
	return s, err
}

func sample(ctx context.Context, sampler eyedropper.Sampler) (string, error) {
	p := picker.New(picker.Options{})
	defer p.Close()

	applied, err := p.Pick(ctx, sampler)
	if err != nil {
		return "", err
	}
	if !applied {
		return "", eyedropper.ErrCancelled
	}
	return p.Color().Hex8(), nil
}
