package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chatmenu/internal/demo"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/i18n"
	"github.com/atomicstack/chatmenu/internal/logging/events"
	"github.com/atomicstack/chatmenu/internal/store"
	"github.com/atomicstack/chatmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ChatID string
	// Database is the SQLite file holding chat sessions. Empty keeps them in
	// memory for the lifetime of the process.
	Database string
	Catalog  string
	Width    int
	Height   int
	// TermWidth and TermHeight are the terminal size detected at startup.
	// They size the first frame when Width and Height are zero.
	TermWidth  int
	TermHeight int
	PerPage    int
	Columns    int
}

var now = time.Now

// Session is a menu wired to its collaborators, ready to be driven.
type Session struct {
	ChatID     string
	Store      store.Store
	Catalog    *i18n.Catalog
	Console    *ui.Console
	Dispatcher *dispatcher.Dispatcher
}

// Open wires the store, message catalog, console transport and demo form.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	catalog := i18n.Default()
	if cfg.Catalog != "" {
		loaded, err := i18n.Load(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	var st store.Store
	if cfg.Database != "" {
		db, err := store.OpenSQLite(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		st = db
	} else {
		st = store.NewMemory()
	}

	s := &Session{ChatID: cfg.ChatID, Store: st, Catalog: catalog, Console: ui.NewConsole()}
	root := demo.Root(demo.Props{
		PerPage:   cfg.PerPage,
		Columns:   cfg.Columns,
		Localizer: catalog,
		OnSubmit:  s.submitted,
	})
	s.Dispatcher = dispatcher.New(root, st, s.Console, catalog)
	return s, nil
}

func (s *Session) submitted(ctx context.Context, v demo.Values) error {
	events.App.Submit(s.ChatID, v)
	text := s.Catalog.Localize("menu.submitted", map[string]any{"at": now()})
	return s.Console.Notify(ctx, s.ChatID, text)
}

// Close releases the store.
func (s *Session) Close() error {
	return s.Store.Close()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
		events.App.Stop(cfg.ChatID, err)
	}()

	model := ui.NewModel(ctx, cfg.ChatID, s.Dispatcher, s.Console, cfg.Width, cfg.Height)
	model.SetInitialSize(cfg.TermWidth, cfg.TermHeight)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
