// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile = "file"
	StoreNATS = "nats"
)

// Same-as binding modes.
const (
	BindingSnapshot = "snapshot"
	BindingLive     = "live"
)

// DefaultUploadExtensions are the site-information file types accepted by
// the site step.
var DefaultUploadExtensions = []string{".csv", ".xls", ".xlsx", ".pdf"}

// Config holds all configuration values for dnvquote.
type Config struct {
	DataDir          string        `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel         string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile          string        `mapstructure:"log_file" yaml:"log_file"`
	Store            string        `mapstructure:"store" yaml:"store"`
	Binding          string        `mapstructure:"binding" yaml:"binding"`
	DirectorRequired bool          `mapstructure:"director_required" yaml:"director_required"`
	SaveDebounce     time.Duration `mapstructure:"save_debounce" yaml:"save_debounce"`
	ExportDir        string        `mapstructure:"export_dir" yaml:"export_dir"`
	UploadExtensions []string      `mapstructure:"upload_extensions" yaml:"upload_extensions"`
	// PDFFont is a TrueType font for PDF exports, needed for text outside
	// Windows-1252.
	PDFFont string `mapstructure:"pdf_font" yaml:"pdf_font"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		DataDir:          ".dnvquote",
		LogLevel:         "info",
		Store:            StoreFile,
		Binding:          BindingSnapshot,
		DirectorRequired: true,
		ExportDir:        ".",
		UploadExtensions: append([]string(nil), DefaultUploadExtensions...),
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("dnvquote")

	def := Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("store", def.Store)
	v.SetDefault("binding", def.Binding)
	v.SetDefault("director_required", def.DirectorRequired)
	v.SetDefault("save_debounce", "0s")
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("upload_extensions", def.UploadExtensions)
	v.SetDefault("pdf_font", "")

	v.SetEnvPrefix("DNVQUOTE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so bool, duration and list values parse from ENV.
	for _, key := range []string{
		"data_dir", "log_level", "log_file", "store", "binding",
		"director_required", "save_debounce", "export_dir", "upload_extensions",
		"pdf_font",
	} {
		if err := v.BindEnv(key, "DNVQUOTE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.UploadExtensions = normalizeExtensions(cfg.UploadExtensions)

	return &cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreNATS:
	default:
		return fmt.Errorf("invalid store %q (want %q or %q)", c.Store, StoreFile, StoreNATS)
	}
	switch c.Binding {
	case BindingSnapshot, BindingLive:
	default:
		return fmt.Errorf("invalid binding %q (want %q or %q)", c.Binding, BindingSnapshot, BindingLive)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("save_debounce cannot be negative")
	}
	if c.PDFFont != "" && !fileExists(c.PDFFont) {
		return fmt.Errorf("pdf_font %q does not exist", c.PDFFont)
	}
	return nil
}

// normalizeExtensions lowercases extensions and adds a missing leading dot.
// Env values arrive as one comma separated string.
func normalizeExtensions(exts []string) []string {
	var out []string
	for _, raw := range exts {
		for _, e := range strings.Split(raw, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			out = append(out, e)
		}
	}
	return out
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/dnvquote/dnvquote.yml or $XDG_CONFIG_HOME/dnvquote/dnvquote.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dnvquote", "dnvquote.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dnvquote", "dnvquote.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "dnvquote.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig(cfg))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileConfigShape mirrors Config with the debounce as a string, since yaml.v3
// writes a time.Duration as nanoseconds.
type fileConfigShape struct {
	DataDir          string   `yaml:"data_dir"`
	LogLevel         string   `yaml:"log_level"`
	LogFile          string   `yaml:"log_file"`
	Store            string   `yaml:"store"`
	Binding          string   `yaml:"binding"`
	DirectorRequired bool     `yaml:"director_required"`
	SaveDebounce     string   `yaml:"save_debounce"`
	ExportDir        string   `yaml:"export_dir"`
	UploadExtensions []string `yaml:"upload_extensions"`
	PDFFont          string   `yaml:"pdf_font,omitempty"`
}

func fileConfig(cfg *Config) fileConfigShape {
	return fileConfigShape{
		DataDir:          cfg.DataDir,
		LogLevel:         cfg.LogLevel,
		LogFile:          cfg.LogFile,
		Store:            cfg.Store,
		Binding:          cfg.Binding,
		DirectorRequired: cfg.DirectorRequired,
		SaveDebounce:     cfg.SaveDebounce.String(),
		ExportDir:        cfg.ExportDir,
		UploadExtensions: cfg.UploadExtensions,
		PDFFont:          cfg.PDFFont,
	}
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
