package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hsv-picker/audio"
	"github.com/lixenwraith/hsv-picker/colormodel"
	"github.com/lixenwraith/hsv-picker/config"
	"github.com/lixenwraith/hsv-picker/eyedropper"
	"github.com/lixenwraith/hsv-picker/logger"
	"github.com/lixenwraith/hsv-picker/modes"
	"github.com/lixenwraith/hsv-picker/picker"
	"github.com/lixenwraith/hsv-picker/render"
)

var (
	configFlag  = flag.String("config", "", "Config file (default $XDG_CONFIG_HOME/hsv-picker/config.toml)")
	colorFlag   = flag.String("color", "", "Initial color, overrides picker.initial")
	formatFlag  = flag.String("format", "", "Display format: hex, rgb, hsl, hsv")
	noAudioFlag = flag.Bool("no-audio", false, "Disable feedback tones")
)

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, cfgErr := config.Load(path)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", cfgErr)
	}

	log, closer := logger.New(cfg.LogPath(), logger.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
	defer closer.Close()
	slog.SetDefault(log)
	slog.Info("starting", "config", path, "format", cfg.Picker.Format, "theme", cfg.Theme.Mode)

	opts, err := pickerOptions(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	final, err := run(cfg, path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hsv-picker: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(final)
}

// pickerOptions merges command-line overrides over the config
func pickerOptions(cfg config.Config) (picker.Options, error) {
	opts := picker.Options{
		Format:  cfg.Format(),
		CursorW: len(render.SliderCursor),
	}

	if *formatFlag != "" {
		f, ok := colormodel.ParseFormat(*formatFlag)
		if !ok {
			return opts, fmt.Errorf("unknown format %q, want hex, rgb, hsl or hsv", *formatFlag)
		}
		opts.Format = f
	}

	c, ok := cfg.InitialColor()
	if *colorFlag != "" {
		parsed, _, err := colormodel.Parse(colormodel.NormalizeHex(*colorFlag))
		if err != nil {
			return opts, fmt.Errorf("initial color %q: %w", *colorFlag, err)
		}
		c, ok = parsed, true
	}
	if ok {
		st := picker.StateFromColor(c)
		opts.Initial = &st
	}
	return opts, nil
}

// run owns the screen for the lifetime of the picker and returns the final formatted color
func run(cfg config.Config, path string, opts picker.Options) (string, error) {
	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled && !*noAudioFlag {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the picker works silently
			slog.Warn("audio initialization failed", "error", err)
		}
	}
	defer sound.Cleanup()
	opts.Feedback = sound

	screen, err := tcell.NewScreen()
	if err != nil {
		return "", fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal before any panic output reaches it
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nHSV-PICKER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	p := picker.New(opts)
	defer p.Close()

	sampler := eyedropper.NewCommand(cfg.Eyedropper.Command, cfg.Eyedropper.Args, cfg.EyedropperTimeout())
	if cfg.Eyedropper.Command != "" && !sampler.Available() {
		slog.Warn("eyedropper command not found", "command", cfg.Eyedropper.Command)
	}

	handler := modes.NewInputHandler(screen, p, sampler)
	defer handler.Close()

	renderer := render.NewTerminalRenderer(screen, render.ThemeFor(cfg.DarkTheme()))

	var reload <-chan struct{}
	if path != "" {
		if w, err := config.NewWatcher(path); err != nil {
			slog.Debug("config watcher disabled", "error", err)
		} else {
			defer w.Close()
			reload = w.Events()
		}
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	draw := func() {
		renderer.RenderFrame(handler.Frame())
		screen.Show()
	}
	draw()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return p.Formatted(), nil
			}
			if !handler.HandleEvent(ev) {
				slog.Info("exiting", "color", p.Formatted())
				return p.Formatted(), nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}

		case <-reload:
			applyReload(path, renderer, sound)
		}
		draw()
	}
}

// applyReload re-reads the config and applies the settings that can change live: theme and audio
func applyReload(path string, renderer *render.TerminalRenderer, sound *audio.SoundManager) {
	cfg, err := config.Load(path)
	if err != nil {
		slog.Warn("config reload failed", "error", err)
		return
	}
	renderer.SetTheme(render.ThemeFor(cfg.DarkTheme()))
	sound.SetMuted(!cfg.Audio.Enabled)
	slog.Info("config reloaded", "path", path, "theme", cfg.Theme.Mode, "audio", cfg.Audio.Enabled)
}
