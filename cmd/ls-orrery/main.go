// Command ls-orrery is a terminal UI that animates a decorative solar system.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/ui"
	"github.com/litescript/ls-orrery/internal/version"
)

// CLI flags for headless mode
var (
	snapshotMode bool
	summaryMode  bool
	jsonPath     string
	ticks        int
	cols         int
	rows         int
)

const (
	defaultFPS = 12.5
	minFPS     = 1.0
	maxFPS     = 60.0
	minSpeed   = 0.1
	maxSpeed   = 20.0
)

func main() {
	// Parse flags
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (TUI mode discards logs otherwise)")
	seed := flag.Uint64("seed", 0, "Seed for starting angles (0 = random)")
	fps := flag.Float64("fps", defaultFPS, "Animation frames per second")
	speed := flag.Float64("speed", 1, "Orbital speed multiplier")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&snapshotMode, "snapshot", false, "Print one frame instead of running the TUI")
	flag.BoolVar(&summaryMode, "summary", false, "Print a text table of body state")
	flag.StringVar(&jsonPath, "json", "", "Export body state as JSON to file (use - for stdout)")
	flag.IntVar(&ticks, "ticks", 0, "Ticks to advance before headless output")
	flag.IntVar(&cols, "cols", 100, "Canvas width in cells for -snapshot")
	flag.IntVar(&rows, "rows", 34, "Canvas height in cells for -snapshot")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ls-orrery v%s\n", version.Version)
		return
	}

	// Clamp frame rate and speed
	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}
	if *speed < minSpeed {
		*speed = minSpeed
	} else if *speed > maxSpeed {
		*speed = maxSpeed
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))
	headless := snapshotMode || summaryMode || jsonPath != ""
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else if !headless {
		logger = logging.Discard()
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("Seed %d", *seed)
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	bodies := orbit.NewSystem(orbit.DefaultCatalog(), rng)

	cfg := ui.DefaultConfig()
	cfg.FrameInterval = time.Duration(float64(time.Second) / *fps)
	cfg.Speed = *speed

	if headless {
		if err := runHeadless(cfg, bodies, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create TUI model
	model, err := ui.New(cfg, bodies, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless mounts the orrery on an off-screen scene, advances it and
// prints the requested outputs.
func runHeadless(cfg ui.Config, bodies []*orbit.Body, logger *logging.Logger) error {
	ocfg := orrery.DefaultConfig()
	ocfg.LabelOffset = cfg.LabelOffset
	ocfg.TicksPerFrame = cfg.TicksPerFrame()

	sc := scene.New(ocfg.Width, ocfg.Height, cols, rows)
	o, err := orrery.Mount(sc, ocfg, bodies, logger.Named("orrery"))
	if err != nil {
		return fmt.Errorf("mount orrery: %w", err)
	}
	defer o.Teardown()

	o.Advance(ticks)

	if snapshotMode {
		colored := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Println(sc.Render(colored))
	}

	export := o.Export()

	if jsonPath != "" {
		if jsonPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(jsonPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if summaryMode {
		if snapshotMode {
			fmt.Println()
		}
		export.WriteSummary(os.Stdout)
	}

	return nil
}
