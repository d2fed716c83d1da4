package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/lixenwraith/rawterm/config"
	"github.com/lixenwraith/rawterm/terminal"
)

const (
	title       = "Input Test - press keys, resize the window - Ctrl+Q to quit"
	accentHex   = "#5fafff"
	maxLog      = 64
	idleBackoff = 10 * time.Millisecond
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		if err := config.Usage(); err != nil {
			fmt.Fprintf(os.Stderr, "usage: %v\n", err)
			os.Exit(2)
		}
		return
	}
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 2
	}
	defer logger.Sync()

	opts, err := cfg.Options(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	s := terminal.New(opts)
	if err := s.Begin(); err != nil {
		fmt.Fprintf(os.Stderr, "begin failed: %v\n", err)
		return 1
	}
	defer s.End()
	defer s.Recover()

	ins := newInspector(s, logger)
	ins.colors = s.Colors(context.Background())
	ins.mode = terminal.DetectColorMode(ins.colors)
	ins.accent = accentRendition(ins.mode)
	if err := ins.resize(); err != nil {
		logger.Error("terminal size", zap.Error(err))
	}

	s.SetTitle("rawterm input test")
	s.SetCursorVisibility(false)
	ins.render()

	for {
		if s.SizeChanged() {
			if err := ins.resize(); err != nil {
				logger.Error("terminal size", zap.Error(err))
			}
			ins.addLog(fmt.Sprintf("RESIZE: %dx%d", ins.size.Columns, ins.size.Rows))
			ins.render()
		}

		ks, ok, err := s.ReadKey(false)
		if err != nil {
			logger.Error("read key", zap.Error(err))
			return 1
		}
		if !ok {
			time.Sleep(idleBackoff)
			continue
		}

		logger.Debug("key", zap.Stringer("key", ks))
		if ks.Type == terminal.KeyEOF || ks.IsCtrl('q') {
			return 0
		}
		ins.addLog(formatKey(ks))
		ins.render()
	}
}

// accentRendition picks the richest title color the terminal can show
func accentRendition(mode terminal.ColorMode) terminal.Rendition {
	accent, err := terminal.ParseRGB(accentHex)
	if err != nil {
		return terminal.FgCyanBold
	}
	switch mode {
	case terminal.ColorModeTrueColor:
		return terminal.FgRGB(accent)
	case terminal.ColorMode256:
		return terminal.Fg256(accent.To256())
	default:
		return terminal.FgCyanBold
	}
}

// inspector draws a scrolling log of decoded keystrokes
type inspector struct {
	s      *terminal.Session
	logger *zap.Logger

	size   terminal.WindowSize
	colors int
	mode   terminal.ColorMode
	accent terminal.Rendition
	log    []string
}

func newInspector(s *terminal.Session, logger *zap.Logger) *inspector {
	return &inspector{
		s:      s,
		logger: logger,
		size:   terminal.WindowSize{Rows: 24, Columns: 80},
		log:    make([]string, 0, maxLog),
	}
}

func (i *inspector) resize() error {
	ws, err := i.s.TerminalSize()
	if err != nil {
		return err
	}
	if ws.Rows > 0 && ws.Columns > 0 {
		i.size = ws
	}
	return nil
}

func (i *inspector) addLog(entry string) {
	if len(i.log) >= maxLog {
		copy(i.log, i.log[1:])
		i.log = i.log[:maxLog-1]
	}
	i.log = append(i.log, entry)
}

func (i *inspector) render() {
	w, h := i.size.Columns, i.size.Rows
	s := i.s

	s.Clear()
	s.PutAt(0, centerColumn(title, w), fit(title, w), i.accent, terminal.BgBlack)
	s.PutAt(1, 0, divider(w), terminal.FgBlackIntense)

	// Newest entries at the bottom of the log area
	rows := max(h-4, 0)
	entries := visible(i.log, rows)
	for n, entry := range entries {
		s.PutAt(2+n, 1, fit(entry, w-1))
	}

	if h >= 4 {
		s.PutAt(h-2, 0, divider(w), terminal.FgBlackIntense)
		status := fmt.Sprintf("Size: %dx%d | Colors: %s (%s) | Keys: %d",
			w, h, colorLabel(i.colors), i.mode, len(i.log))
		s.PutAt(h-1, 1, fit(status, w-1), terminal.FgWhite)
	}

	if err := s.Flush(); err != nil {
		i.logger.Error("flush", zap.Error(err))
	}
}

// formatKey renders a keystroke for the log
func formatKey(ks terminal.KeyStroke) string {
	if ks.Type == terminal.KeyCharacter && !ks.Ctrl && ks.Char > ' ' {
		label := ks.String()
		return fmt.Sprintf("KEY: %-16s U+%04X  width %d", label, ks.Char, runewidth.RuneWidth(ks.Char))
	}
	return "KEY: " + ks.String()
}

func colorLabel(colors int) string {
	if colors < 0 {
		return "none"
	}
	return fmt.Sprint(colors)
}

// visible returns the last n entries
func visible(log []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(log) > n {
		return log[len(log)-n:]
	}
	return log
}

// centerColumn returns the start column that centers s in width cells
func centerColumn(s string, width int) int {
	col := (width - runewidth.StringWidth(s)) / 2
	if col < 0 {
		return 0
	}
	return col
}

// fit truncates s to width display cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func divider(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
