package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[status]
baseUrl = "https://wiki.example.com"
interval = "1s"

[[toolbar.buttons]]
name = "strike"
kind = "wrap"
open = "~~"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "status.baseUrl"); !ok || val != "https://wiki.example.com" {
		t.Errorf("status.baseUrl = %v", val)
	}

	buttons, ok := GetByPath(config, "toolbar.buttons")
	if !ok {
		t.Fatal("toolbar.buttons missing")
	}
	list, ok := buttons.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("toolbar.buttons = %#v", buttons)
	}
	button, ok := list[0].(map[string]any)
	if !ok || button["open"] != "~~" {
		t.Errorf("button = %#v", list[0])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	loader := NewTOMLLoaderWithFS(NewMemFS(), "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[status
label = "Export"
`)

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line == 0 {
		t.Error("expected a line number")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	config, err := loader.LoadFromReader(strings.NewReader(`
label = "Import"
retries = 3
`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if config["label"] != "Import" {
		t.Errorf("label = %v, want 'Import'", config["label"])
	}
	if config["retries"] != int64(3) {
		t.Errorf("retries = %v, want 3", config["retries"])
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.toml", "*loader.TOMLLoader"},
		{"a.TOML", "*loader.TOMLLoader"},
		{"a.yaml", "*loader.YAMLLoader"},
		{"a.yml", "*loader.YAMLLoader"},
	}
	for _, tt := range tests {
		l, err := ForPath(nil, tt.path)
		if err != nil {
			t.Errorf("ForPath(%q): %v", tt.path, err)
			continue
		}
		if got := reflect.TypeOf(l).String(); got != tt.want {
			t.Errorf("ForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, err := ForPath(nil, "a.json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForPath(a.json) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"status": map[string]any{"label": "Export", "interval": "1s"},
			},
			src: map[string]any{
				"status": map[string]any{"interval": "2s"},
			},
			expected: map[string]any{
				"status": map[string]any{"label": "Export", "interval": "2s"},
			},
		},
		{
			name:     "list replaced",
			dst:      map[string]any{"buttons": []any{"a", "b"}},
			src:      map[string]any{"buttons": []any{"c"}},
			expected: map[string]any{"buttons": []any{"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", got, tt.expected)
			}
		})
	}
}
