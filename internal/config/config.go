package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/chatmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig is the optional YAML file. Every field is a default that the
// environment and flags override.
type fileConfig struct {
	ChatID   string `yaml:"chat_id"`
	Database string `yaml:"database"`
	Catalog  string `yaml:"catalog"`
	LogFile  string `yaml:"log_file"`
	Trace    bool   `yaml:"trace"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	PerPage  int    `yaml:"per_page"`
	Columns  int    `yaml:"columns"`
}

const (
	envConfig   = "CHATMENU_CONFIG"
	envChatID   = "CHATMENU_CHAT_ID"
	envDatabase = "CHATMENU_DATABASE"
	envCatalog  = "CHATMENU_CATALOG"
	envWidth    = "CHATMENU_WIDTH"
	envHeight   = "CHATMENU_HEIGHT"
	envPerPage  = "CHATMENU_PER_PAGE"
	envColumns  = "CHATMENU_COLUMNS"
	envTrace    = "CHATMENU_TRACE"
	envLogFile  = "CHATMENU_LOG_FILE"
)

const defaultChatID = "console"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPath(args, env)
	file := fileConfig{ChatID: defaultChatID}
	if path != "" {
		if err := readFile(path, &file); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("chatmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a YAML configuration file")
	chatID := fs.String("chat", envOrDefault(env, envChatID, file.ChatID), "chat identifier the console session runs as")
	database := fs.String("database", envOrDefault(env, envDatabase, file.Database), "SQLite database path (empty keeps state in memory)")
	catalog := fs.String("catalog", envOrDefault(env, envCatalog, file.Catalog), "YAML message catalog overlaying the built-in messages")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	perPage := fs.Int("per-page", envOrInt(env, envPerPage, file.PerPage), "options per select page (0 uses the widget default)")
	columns := fs.Int("columns", envOrInt(env, envColumns, file.Columns), "option grid columns (0 uses the widget default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for name, v := range map[string]int{"width": *width, "height": *height, "per-page": *perPage, "columns": *columns} {
		if v < 0 {
			return Config{}, fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}

	cfg := Config{
		App: app.Config{
			ChatID:   *chatID,
			Database: *database,
			Catalog:  *catalog,
			Width:    *width,
			Height:   *height,
			PerPage:  *perPage,
			Columns:  *columns,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":   path,
			"chat":     *chatID,
			"database": *database,
			"catalog":  *catalog,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"perPage":  strconv.Itoa(*perPage),
			"columns":  strconv.Itoa(*columns),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds -config before the flag set is built, since the file
// supplies the defaults of every other flag.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfig, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			path = value
			continue
		}
		if name == "config" && i+1 < len(args) {
			path = args[i+1]
			i++
		}
	}
	return path
}

func readFile(path string, out *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ChatID) == "" {
		return errors.New("chat id must not be empty")
	}
	if cfg.App.Catalog != "" {
		if _, err := os.Stat(cfg.App.Catalog); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}
