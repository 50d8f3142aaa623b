package loader

import (
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("PAGEDIT_LOG_LEVEL", "debug")
	t.Setenv("PAGEDIT_STATUS_BASE_URL", "https://wiki.example.com")
	t.Setenv("PAGEDIT_STATUS_INTERVAL", "2s")
	t.Setenv("PAGEDIT_TOOLBAR_DEFAULTS", "false")

	loader := NewEnvLoader(EnvPrefix)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, ok := GetByPath(config, "status.baseUrl"); !ok || val != "https://wiki.example.com" {
		t.Errorf("status.baseUrl = %v", val)
	}
	if val, ok := GetByPath(config, "status.interval"); !ok || val != "2s" {
		t.Errorf("status.interval = %v (%T), want string 2s", val, val)
	}
	if val, ok := GetByPath(config, "toolbar.useDefaults"); !ok || val != false {
		t.Errorf("toolbar.useDefaults = %v, want false", val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("PAGEDIT_EDITOR_TAB_WIDTH", "8")
	t.Setenv("PAGEDIT_CONFIG", "/tmp/pagedit.toml")

	config, err := NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "editor.tabWidth"); !ok || val != int64(8) {
		t.Errorf("editor.tabWidth = %v (%T), want 8", val, val)
	}
	if _, ok := config["config"]; ok {
		t.Error("PAGEDIT_CONFIG should not become a setting")
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader(EnvPrefix)

	tests := []struct {
		env      string
		expected string
	}{
		{"PAGEDIT_EDITOR_TAB_WIDTH", "editor.tabWidth"},
		{"PAGEDIT_LOG_LEVEL", "log.level"},
		{"PAGEDIT_SIMPLE", "simple"},
		{"PAGEDIT_DEEP_NESTED_PATH", "deep.nestedPath"},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	loader := NewEnvLoader(EnvPrefix)

	tests := []struct {
		input    string
		expected any
	}{
		{"true", true},
		{"YES", true},
		{"on", true},
		{"false", false},
		{"Off", false},
		{"42", int64(42)},
		{"-10", int64(-10)},
		{"1", int64(1)},
		{"500ms", "500ms"},
		{"hello world", "hello world"},
		{"", ""},
	}

	for _, tt := range tests {
		got := loader.parseValue(tt.input)
		if got != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)",
				tt.input, got, got, tt.expected, tt.expected)
		}
	}
}

func TestNewEnvLoaderWithMapping(t *testing.T) {
	loader := NewEnvLoaderWithMapping("MY_", map[string]string{
		"MY_VAR": "my.setting",
	})
	loader.AddMapping("OTHER_VAR", "other.path")

	t.Setenv("MY_VAR", "test_value")
	t.Setenv("OTHER_VAR", "other_value")

	config, _ := loader.Load()

	if val, ok := GetByPath(config, "my.setting"); !ok || val != "test_value" {
		t.Errorf("my.setting = %v, want 'test_value'", val)
	}
	if val, ok := GetByPath(config, "other.path"); !ok || val != "other_value" {
		t.Errorf("other.path = %v, want 'other_value'", val)
	}
}
