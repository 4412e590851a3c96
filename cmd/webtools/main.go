// Command webtools is an ultrasonic NDT calculator: probe wavelength and
// pitch, wedge refraction angles and a TFM/PWI demo screen.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/enziog/webTools/internal/app"
	"github.com/enziog/webTools/internal/config"
	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/export"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/mcptools"
	"github.com/pkg/browser"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

const usage = `usage: webtools [command]

commands:
  tui                 interactive calculator (default)
  export -o FILE      write saved records to FILE (.csv or .xlsx)
  mcp                 serve the calculators over MCP on stdio
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}
	text, err := i18n.New(cfg.Locale)
	if err != nil {
		config.Exitf("%v", err)
	}

	cmd, args := "tui", os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "tui":
		err = runTUI(cfg, text)
	case "export":
		err = runExport(cfg, args)
	case "mcp":
		err = runMCP(cfg, text)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		config.Exitf("%v", err)
	}
}

func runTUI(cfg config.Config, text *i18n.Messages) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o750); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath, "webtools")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Keep browser launcher output off the alternate screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	m := app.New(db.NewRecordStore(store), text, cfg.MarkdownStyle)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runExport(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "output file (.csv or .xlsx)")
	fs.Parse(args)
	if *out == "" {
		fs.Usage()
		return errors.New("export: -o is required")
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	d := db.NewRecordStore(store).Load()
	if err := export.ToFile(*out, d); err != nil {
		return err
	}
	fmt.Printf("exported %d records to %s\n", d.Len(), *out)
	return nil
}

func runMCP(cfg config.Config, text *i18n.Messages) error {
	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return mcptools.New(db.NewRecordStore(store), text, version).Serve()
}
