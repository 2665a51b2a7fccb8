// Package config loads the casement configuration file.
//
// The file is TOML and every section is optional:
//
//	[company]
//	name    = "TEKNA WINDOW SYSTEM"
//	address = ["VAVDI INDUSTRY AREA", "VAVDI MAIN ROAD"]
//	contact = ["Mobile : 9825256525"]
//
//	[quotation]
//	template     = "classic"
//	client       = "Valued Customer"
//	currency     = "₹"
//	numberPrefix = "QE/TK/"
//	dateLayout   = "02/01/2006"
//	terms        = ["1. Quotation valid for 1 week."]
//
//	[defaults]
//	height = 48
//	width  = 36
//	rate   = 150
//
//	[server]
//	addr         = ":8080"
//	readTimeout  = "10s"
//	writeTimeout = "30s"
//	redisURL     = "redis://localhost:6379/0"
//
// The environment variables CASEMENT_ADDR, CASEMENT_TEMPLATE and
// CASEMENT_REDIS_URL override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/window"
)

// ============================================================
// Configuration
// ============================================================

const appName = "casement"

// Server defaults.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Config is the parsed configuration file.
type Config struct {
	// Company overrides the letterhead of the selected template.
	Company   quotation.Company  `toml:"company"`
	Quotation Quotation          `toml:"quotation"`
	Defaults  window.WindowSpecs `toml:"defaults"`
	Server    Server             `toml:"server"`
}

// Quotation holds quotation defaults.
type Quotation struct {
	Template     string   `toml:"template"`
	Client       string   `toml:"client"`
	Currency     string   `toml:"currency"`
	NumberPrefix string   `toml:"numberPrefix"`
	DateLayout   string   `toml:"dateLayout"`
	Terms        []string `toml:"terms"`
}

// Server configures `casement serve`.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"readTimeout"`
	WriteTimeout time.Duration `toml:"writeTimeout"`
	// RedisURL enables the shared model cache. Empty disables caching.
	RedisURL string `toml:"redisURL"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// DefaultPath returns $XDG_CONFIG_HOME/casement/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path. An empty path reads the default
// location and tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return withEnv(Default()), nil
		}
		path = p
	}

	c, err := Decode(path)
	if err != nil {
		if !explicit && errors.Is(err, errors.ErrCodeFileNotFound) {
			return withEnv(Default()), nil
		}
		return Config{}, err
	}
	return withEnv(c), nil
}

// Decode parses the file at path without consulting the environment.
func Decode(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown key %s", path, keys[0])
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Quotation.Template == "" {
		c.Quotation.Template = quotation.DefaultTemplate
	}
}

func withEnv(c Config) Config {
	c.Server.Addr = getEnv("CASEMENT_ADDR", c.Server.Addr)
	c.Quotation.Template = getEnv("CASEMENT_TEMPLATE", c.Quotation.Template)
	c.Server.RedisURL = getEnv("CASEMENT_REDIS_URL", c.Server.RedisURL)
	return c
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// Specs returns the configured spec defaults layered over
// [window.Default].
func (c Config) Specs() window.WindowSpecs {
	return c.Defaults.Merge(window.Default())
}

// Template resolves the configured default template and applies the
// [company] and [quotation] overrides to it.
func (c Config) Template() (quotation.Template, error) {
	t, err := quotation.Lookup(c.Quotation.Template)
	if err != nil {
		return quotation.Template{}, fmt.Errorf("config: %w", err)
	}
	if c.Company.Name != "" {
		t.Company.Name = c.Company.Name
	}
	if len(c.Company.Address) > 0 {
		t.Company.Address = c.Company.Address
	}
	if len(c.Company.Contact) > 0 {
		t.Company.Contact = c.Company.Contact
	}
	q := c.Quotation
	if q.Currency != "" {
		t.Currency = q.Currency
	}
	if q.NumberPrefix != "" {
		t.NumberPrefix = q.NumberPrefix
	}
	if q.DateLayout != "" {
		t.DateLayout = q.DateLayout
	}
	if len(q.Terms) > 0 {
		t.Terms = q.Terms
	}
	return t, nil
}

// Templates returns the template table for a pipeline runner: the
// configured default template under its own name when the file overrides
// anything, otherwise an empty table.
func (c Config) Templates() (map[string]quotation.Template, error) {
	t, err := c.Template()
	if err != nil {
		return nil, err
	}
	table := map[string]quotation.Template{}
	if c.overridesTemplate() {
		table[strings.ToLower(t.Name)] = t
	}
	return table, nil
}

func (c Config) overridesTemplate() bool {
	q := c.Quotation
	return c.Company.Name != "" || len(c.Company.Address) > 0 || len(c.Company.Contact) > 0 ||
		q.Currency != "" || q.NumberPrefix != "" || q.DateLayout != "" || len(q.Terms) > 0
}
