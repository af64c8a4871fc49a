package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/natrium/internal/config"
	"github.com/xonecas/natrium/internal/editor"
	"github.com/xonecas/natrium/internal/fileio"
	"github.com/xonecas/natrium/internal/shell"
	"github.com/xonecas/natrium/internal/store"
	"github.com/xonecas/natrium/internal/tui"
)

var version = "dev"

func main() {
	readOnly := flag.Bool("R", false, "open files read only")
	configPath := flag.String("config", "", "config `file` (default <data dir>/config.toml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: natrium [-R] [-config file] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("natrium", version)
		return
	}
	if err := run(*configPath, *readOnly, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running natrium: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, readOnly bool, files []string) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath = filepath.Join(dataDir, "config.toml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "natrium.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Options.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := editor.Options{
		AutoIndent:  cfg.Options.AutoIndent,
		Debug:       cfg.Options.Debug,
		Highlight:   cfg.Options.Highlight,
		LineMarker:  cfg.Options.LineMarker,
		ReadOnly:    cfg.Options.ReadOnly || readOnly,
		LineNumbers: cfg.Options.LineNumbers,
	}
	ed := editor.New(opts)

	var db *store.DB
	if cfg.History.Enabled {
		ttl := time.Duration(cfg.History.PositionTTLDays) * 24 * time.Hour
		db, err = store.Open(filepath.Join(dataDir, "natrium.db"), ttl)
		if err != nil {
			log.Warn().Err(err).Msg("session store unavailable")
			db = nil
		} else {
			if err := db.TrimHistory(cfg.History.Limit); err != nil {
				log.Warn().Err(err).Msg("failed to trim prompt history")
			}
			ed.SetSession(db, cfg.History.Limit)
		}
	}
	defer db.Close()

	if cfg.Shell.Enabled {
		ed.SetShell(shell.New("", shell.Blockers(cfg.Shell.Blocked)))
	}

	first := -1
	for _, f := range files {
		if ed.Open(f) == fileio.Ok && first < 0 {
			first = ed.Buffers.CurrentIndex()
		}
	}
	if first >= 0 && first != ed.Buffers.CurrentIndex() {
		ed.Buffers.SwitchTo(first)
	}

	log.Info().Int("files", len(files)).Bool("readonly", opts.ReadOnly).Msg("natrium started")
	p := tea.NewProgram(tui.New(ed, tui.Options{
		Theme:    cfg.UI.SyntaxThemeOrDefault(),
		TabWidth: cfg.UI.TabWidth,
	}))
	_, err = p.Run()
	ed.Close()
	return err
}
