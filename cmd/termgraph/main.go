package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/termgraph/audio"
	"github.com/lixenwraith/termgraph/config"
	"github.com/lixenwraith/termgraph/graph"
	"github.com/lixenwraith/termgraph/input"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	scaleFlag   = flag.Int("scale", 0, "Zoom exponent: cell = 0.5^scale graph units")
	offsetXFlag = flag.Int("offset-x", 0, "Origin shift right, in cells")
	offsetYFlag = flag.Int("offset-y", 0, "Origin shift up, in cells")
	onceFlag    = flag.Bool("once", false, "Print one frame to stdout and exit")
	widthFlag   = flag.Int("width", 0, "Frame width for -once (0: terminal width)")
	heightFlag  = flag.Int("height", 0, "Frame height for -once (0: terminal height)")
	noAxesFlag  = flag.Bool("no-axes", false, "Hide the axes")
	debugFlag   = flag.Bool("debug", false, "Log to logs/termgraph.log")
	audioFlag   = flag.Bool("audio", false, "Enable curve sonification (key: s)")
	seedFlag    = flag.Int64("seed", 0, "Seed for noise(x)")
)

// Fallback surface when stdout is not a terminal
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: termgraph [flags] [formula...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	p, err := buildPlot(cfg, flag.Args(), *seedFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *onceFlag {
		if err := printOnce(os.Stdout, p, *widthFlag, *heightFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(p, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "termgraph: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional file, then applies explicitly set flags
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.View.Scale = *scaleFlag
		case "offset-x":
			cfg.View.OffsetX = *offsetXFlag
		case "offset-y":
			cfg.View.OffsetY = *offsetYFlag
		case "no-axes":
			cfg.Axes.Show = !*noAxesFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// surfaceSize picks the -once frame size: explicit flags, else the TTY, else the fallback
func surfaceSize(width, height int) graph.Size {
	if width > 0 && height > 0 {
		return graph.Size{Width: width, Height: height}
	}
	size := graph.Size{Width: defaultWidth, Height: defaultHeight}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			size = graph.Size{Width: w, Height: h}
		}
	}
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}

// printOnce writes a single frame
func printOnce(w io.Writer, p *plot, width, height int) error {
	size := surfaceSize(width, height)
	log.Printf("once: %dx%d", size.Width, size.Height)
	return p.canvas.Draw(w, size)
}

// runInteractive owns the terminal for the lifetime of the viewer
func runInteractive(p *plot, cfg *config.Config) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMGRAPH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, viewer runs without sound
			log.Printf("Audio initialization failed: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	newViewer(screen, p, keys, cfg, sound).run()
	return nil
}
