package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"logcat/internal/adb"
	"logcat/internal/colorize"
	"logcat/internal/pipeline"
	"logcat/internal/rules"
	"logcat/internal/tui"
	"logcat/internal/watch"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("logcat: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rulesFlag := flag.String("rules", "", "YAML file overriding highlight/ignore tags, pinned colors and column widths")
	fileFlag := flag.String("file", "", "Read a saved logcat capture instead of adb or stdin")
	followFlag := flag.Bool("follow", true, "Keep following --file for appended lines")
	adbFlag := flag.String("adb", "adb", "Path to the adb binary")
	viewFlag := flag.Bool("view", false, "Open an interactive scrollback viewer")
	themeFlag := flag.String("theme", "vapor", "Viewer theme (vapor|midnight|dusk)")
	scrollbackFlag := flag.Int("scrollback", 5000, "Lines kept by the viewer")
	debugFlag := flag.Bool("debug", false, "Log diagnostics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [adb args...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := rules.DefaultConfig()
	if *rulesFlag != "" {
		loaded, err := rules.LoadFromFile(*rulesFlag)
		if err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		cfg = loaded
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	events, source, err := openSource(ctx, *fileFlag, *followFlag, adb.New(*adbFlag, flag.Args()...))
	if err != nil {
		return err
	}
	logger.Debug("reading", "source", source)

	width := terminalWidth()
	colorizer := colorize.New(cfg, width)
	logger.Debug("colorizer ready", "width", width, "tag_width", cfg.Columns.Tag)

	if *viewFlag {
		model := tui.NewModel(tui.ModelConfig{
			Events:     events,
			Colorizer:  colorizer,
			ThemeName:  *themeFlag,
			Scrollback: *scrollbackFlag,
			Source:     source,
		})
		_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	}

	err = pipeline.New(colorizer).Copy(ctx, events, os.Stdout)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// openSource picks the line source: a capture file when given, adb logcat
// when stdin is a terminal, and piped stdin otherwise.
func openSource(ctx context.Context, file string, follow bool, client *adb.Client) (<-chan watch.LogEvent, string, error) {
	if file != "" {
		events, err := watch.TailFile(ctx, file, follow)
		return events, file, err
	}
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		events, err := watch.Command(ctx, client.Logcat(ctx))
		if err != nil {
			return nil, "", fmt.Errorf("start adb logcat: %w", err)
		}
		return events, "adb logcat", nil
	}
	return watch.ReadLines(ctx, os.Stdin), "stdin", nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return colorize.DefaultWidth
	}
	return width
}
