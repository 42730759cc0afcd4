// Package main is a terminal demo host for the modalkit engine: it
// loads a file into the in-memory host, hands keys to the session the
// way an embedding editor would, and paints the buffer, mode, and
// pending keys.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalkit/internal/app"
	"github.com/dshills/modalkit/internal/host/memhost"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var logPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logPath, "log", "", "Write diagnostics to a file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "modalkit - modal key interpretation demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modalkit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("modalkit %s (%s)\n", version, commit)
		return 0
	}

	text := "Welcome to modalkit.\n\nTry: h j k l  w b e  f<char>  ; ,\n     d c y with motions and i( iw a\" ...\n     v V for visual, ys cs ds for surround.\n"
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	h := memhost.NewWithText(text)

	opts := app.Options{Host: h, ConfigPath: configPath}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		opts.LogOutput = f
	} else {
		// The screen owns the terminal; drop stderr diagnostics.
		opts.LogOutput = discard{}
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := application.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	defer screen.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	ui := newUI(screen, h, application.Session())
	ui.run()
	return 0
}

// discard swallows log output while the screen is active.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
