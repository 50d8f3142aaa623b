package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable pagedit reads.
const EnvPrefix = "PAGEDIT_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "PAGEDIT_")
	mapping map[string]string // Env var -> config path
	skip    map[string]bool   // Prefixed vars that are not settings
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "PAGEDIT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		skip: map[string]bool{
			prefix + "CONFIG": true,
		},
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
// Multi-word setting names are spelled out so the split on "_" cannot
// misplace a section boundary.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":            "log.level",
		prefix + "LOG_FILE":             "log.file",
		prefix + "LOG_JSON":             "log.json",
		prefix + "STATUS_BASE_URL":      "status.baseUrl",
		prefix + "STATUS_INTERVAL":      "status.interval",
		prefix + "STATUS_STALL_TIMEOUT": "status.stallTimeout",
		prefix + "STATUS_LABEL":         "status.label",
		prefix + "TOOLBAR_DEFAULTS":     "toolbar.useDefaults",
		prefix + "TOOLBAR_TIMEOUT":      "toolbar.scriptTimeout",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	// First, load explicitly mapped variables
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, l.parseValue(val))
		}
	}

	// Then, scan for additional prefixed variables not in mapping
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped || l.skip[name] {
			continue
		}

		// Convert PAGEDIT_EDITOR_TAB_WIDTH to editor.tabWidth
		setByPath(config, l.envToPath(name), l.parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts PAGEDIT_EDITOR_TAB_WIDTH to editor.tabWidth.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")

	// First part is the section
	result := []string{strings.ToLower(parts[0])}

	// Remaining parts form the setting name in camelCase
	if len(parts) > 1 {
		settingName := strings.ToLower(parts[1])
		for _, part := range parts[2:] {
			if len(part) > 0 {
				settingName += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
			}
		}
		result = append(result, settingName)
	}

	return strings.Join(result, ".")
}

// parseValue attempts to parse the string value into an appropriate type.
// Durations stay strings; the typed config parses them.
func (l *EnvLoader) parseValue(s string) any {
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)
	if lower == "true" || lower == "yes" || lower == "on" {
		return true
	}
	if lower == "false" || lower == "no" || lower == "off" {
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}
