package main

import (
	"testing"

	"github.com/atomicstack/chatmenu/internal/app"
	"github.com/atomicstack/chatmenu/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Descriptors) != 3 {
		t.Fatalf("expected 3 descriptor entries, got %d", len(info.Descriptors))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Descriptors[i].Name != name {
			t.Fatalf("expected descriptor %d name %q, got %q", i, name, info.Descriptors[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ChatID:   "console",
			Database: "menu.db",
			Width:    80,
			Height:   24,
			PerPage:  6,
			Columns:  2,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "chatmenu.yaml",
		Flags: map[string]string{
			"chat":     "console",
			"database": "menu.db",
			"width":    "80",
			"height":   "24",
			"perPage":  "6",
		},
		Args: []string{"-database", "menu.db"},
	}

	payload := startupTracePayload(cfg, ttyDetails{})

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["database"] != "menu.db" {
		t.Fatalf("expected database flag %q, got %v", "menu.db", flagsValue["database"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["perPage"] != "6" {
		t.Fatalf("expected perPage 6, got %v", flagsValue["perPage"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if payload["configFile"] != "chatmenu.yaml" {
		t.Fatalf("expected config file chatmenu.yaml, got %v", payload["configFile"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestApplyTerminalSizeUsesDetectedDimensions(t *testing.T) {
	cfg := app.Config{ChatID: "console", Width: 0, Height: 30}
	tty := ttyDetails{Detected: &ttyDetected{Source: "stdout", Width: 120, Height: 40}}

	got := applyTerminalSize(cfg, tty)
	if got.TermWidth != 120 || got.TermHeight != 40 {
		t.Fatalf("expected terminal size 120x40, got %dx%d", got.TermWidth, got.TermHeight)
	}
	if got.Width != 0 || got.Height != 30 {
		t.Fatalf("expected explicit dimensions untouched, got %dx%d", got.Width, got.Height)
	}
}

func TestApplyTerminalSizeWithoutTerminal(t *testing.T) {
	cfg := app.Config{ChatID: "console"}
	got := applyTerminalSize(cfg, ttyDetails{})
	if got != cfg {
		t.Fatalf("expected config unchanged, got %#v", got)
	}
}
