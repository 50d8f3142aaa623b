package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the complete pagedit configuration.
type Config struct {
	Log     Log     `toml:"log" yaml:"log"`
	Status  Status  `toml:"status" yaml:"status"`
	Toolbar Toolbar `toml:"toolbar" yaml:"toolbar"`
	Editor  Editor  `toml:"editor" yaml:"editor"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	JSON  bool   `toml:"json" yaml:"json"`
	// File receives log output. The terminal editor requires it because
	// stderr is the screen.
	File string `toml:"file" yaml:"file"`
}

// Status configures the process status monitor.
type Status struct {
	BaseURL        string   `toml:"baseUrl" yaml:"baseUrl"`
	Interval       Duration `toml:"interval" yaml:"interval"`
	StallTimeout   Duration `toml:"stallTimeout" yaml:"stallTimeout"`
	RequestTimeout Duration `toml:"requestTimeout" yaml:"requestTimeout"`
	Label          string   `toml:"label" yaml:"label"`
}

// Toolbar configures the markup toolbar.
type Toolbar struct {
	// UseDefaults starts from the built-in wiki buttons. Buttons with the
	// same name replace a default in place.
	UseDefaults   bool     `toml:"useDefaults" yaml:"useDefaults"`
	ScriptTimeout Duration `toml:"scriptTimeout" yaml:"scriptTimeout"`
	Buttons       []Button `toml:"buttons" yaml:"buttons"`
}

// Button kinds.
const (
	KindWrap   = "wrap"
	KindHeader = "header"
	KindList   = "list"
	KindScript = "script"
)

// Button defines one toolbar command.
type Button struct {
	Name string `toml:"name" yaml:"name"`
	Kind string `toml:"kind" yaml:"kind"`

	Open  string `toml:"open,omitempty" yaml:"open,omitempty"`   // wrap
	Close string `toml:"close,omitempty" yaml:"close,omitempty"` // wrap; defaults to Open

	Marker string `toml:"marker,omitempty" yaml:"marker,omitempty"` // header
	Bullet string `toml:"bullet,omitempty" yaml:"bullet,omitempty"` // list

	Script string `toml:"script,omitempty" yaml:"script,omitempty"` // script file
	Source string `toml:"source,omitempty" yaml:"source,omitempty"` // inline script
}

// Editor configures the terminal editor.
type Editor struct {
	TabWidth    int  `toml:"tabWidth" yaml:"tabWidth"`
	ShowToolbar bool `toml:"showToolbar" yaml:"showToolbar"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: Log{
			Level: "info",
		},
		Status: Status{
			Interval:       Duration(time.Second),
			StallTimeout:   Duration(20 * time.Second),
			RequestTimeout: Duration(10 * time.Second),
			Label:          "Export",
		},
		Toolbar: Toolbar{
			UseDefaults:   true,
			ScriptTimeout: Duration(2 * time.Second),
		},
		Editor: Editor{
			TabWidth:    4,
			ShowToolbar: true,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Status.Interval <= 0 {
		return fmt.Errorf("%w: status.interval must be positive", ErrInvalidValue)
	}
	if c.Status.StallTimeout <= 0 {
		return fmt.Errorf("%w: status.stallTimeout must be positive", ErrInvalidValue)
	}
	if c.Status.RequestTimeout <= 0 {
		return fmt.Errorf("%w: status.requestTimeout must be positive", ErrInvalidValue)
	}
	if c.Editor.TabWidth <= 0 {
		return fmt.Errorf("%w: editor.tabWidth must be positive", ErrInvalidValue)
	}
	for i, b := range c.Toolbar.Buttons {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("%w: toolbar.buttons[%d] has no name", ErrInvalidValue, i)
		}
	}
	return nil
}

// Marshal encodes c as TOML or YAML.
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		return toml.Marshal(c)
	case "yaml", "yml":
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidValue, format)
	}
}

// resolvePaths makes script paths relative to the config file's directory.
func (c *Config) resolvePaths(dir string) {
	if dir == "" {
		return
	}
	for i := range c.Toolbar.Buttons {
		p := c.Toolbar.Buttons[i].Script
		if p != "" && !filepath.IsAbs(p) {
			c.Toolbar.Buttons[i].Script = filepath.Join(dir, p)
		}
	}
}

// DefaultPath returns the first existing config file under the user config
// directory, or "" when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, "pagedit", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Duration is a time.Duration written as a string such as "1s".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("%w: duration %q", ErrInvalidValue, text)
	}
	*d = Duration(v)
	return nil
}
