// Package main is the entry point for the reviso demo shell, a
// line-oriented driver for snapshot-versioned editing sessions.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/reviso/internal/app"
	"github.com/dshills/reviso/internal/editor"
	"github.com/dshills/reviso/internal/history"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	sh := &shell{
		app: application,
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
	return sh.run()
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var logLevel string

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file on change")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Reviso - snapshot-versioned editing sessions\n\n")
		fmt.Fprintf(os.Stderr, "Usage: reviso [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nShell commands: set, title, font, state, undo, redo, history, reset, sessions, quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Reviso %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if logLevel != "" {
		switch logLevel {
		case "debug", "info", "warn", "error":
			opts.Logger = app.NewLogger(app.WithLevel(app.ParseLogLevel(logLevel)))
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
			os.Exit(1)
		}
	}

	return opts
}

// shell reads commands line by line and applies them to one editing
// session.
type shell struct {
	app *app.App
	in  *bufio.Scanner
	out io.Writer
}

func (s *shell) run() int {
	sess := s.app.Sessions().Create(editor.DefaultFields()...)
	ed := sess.Editor

	fmt.Fprintf(s.out, "reviso session %s (history depth %d)\n", sess.ID, ed.MaxHistory())

	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return 0
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		switch cmd {
		case "quit", "exit":
			return 0
		case "set":
			ed.SetContent(rest)
			s.printState(ed)
		case "title":
			ed.SetTitle(rest)
			s.printState(ed)
		case "font":
			s.cmdFont(ed, rest)
		case "state":
			s.printState(ed)
		case "undo":
			s.cmdUndo(ed)
		case "redo":
			s.cmdRedo(ed)
		case "history":
			fmt.Fprintf(s.out, "undo steps: %d, redo steps: %d, phase: %s\n",
				ed.UndoCount(), ed.RedoCount(), ed.Phase())
		case "reset":
			ed.Reset(editor.DefaultFields()...)
			fmt.Fprintln(s.out, "session reset")
		case "sessions":
			s.cmdSessions()
		case "help":
			fmt.Fprintln(s.out, "commands: set <text>, title <text>, font <name> <size>, state, undo, redo, history, reset, sessions, quit")
		default:
			fmt.Fprintf(s.out, "unknown command %q (try help)\n", cmd)
		}
	}
}

func (s *shell) cmdSessions() {
	sessions := s.app.Sessions().List()
	for _, sess := range sessions {
		fmt.Fprintf(s.out, "%s  created %s  phase %s\n",
			sess.ID, sess.CreatedAt.Format(time.RFC3339), sess.Editor.Phase())
	}
	fmt.Fprintf(s.out, "%d open session(s)\n", len(sessions))
}

func (s *shell) cmdFont(ed *editor.Editor, args string) {
	name, sizeStr, ok := strings.Cut(args, " ")
	if !ok || name == "" {
		fmt.Fprintln(s.out, "usage: font <name> <size>")
		return
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(sizeStr), 64)
	if err != nil {
		fmt.Fprintf(s.out, "bad font size %q\n", sizeStr)
		return
	}
	ed.SetFont(name, size)
	s.printState(ed)
}

func (s *shell) cmdUndo(ed *editor.Editor) {
	snap, err := ed.Undo()
	if err != nil {
		if errors.Is(err, history.ErrEmptyHistory) {
			fmt.Fprintln(s.out, "nothing to undo")
			return
		}
		fmt.Fprintf(s.out, "undo: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "restored %s\n", snap.Format())
}

func (s *shell) cmdRedo(ed *editor.Editor) {
	snap, err := ed.Redo()
	if err != nil {
		if errors.Is(err, history.ErrEmptyFuture) {
			fmt.Fprintln(s.out, "nothing to redo")
			return
		}
		fmt.Fprintf(s.out, "redo: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "restored %s\n", snap.Format())
}

func (s *shell) printState(ed *editor.Editor) {
	fmt.Fprintf(s.out, "state %s\n", ed.State().Format())
}
