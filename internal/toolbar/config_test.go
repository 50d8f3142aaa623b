package toolbar

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/pagedit/internal/config"
	"github.com/dshills/pagedit/internal/markup"
)

func TestFromConfigLayersOverDefaults(t *testing.T) {
	cfg := config.Toolbar{
		UseDefaults: true,
		Buttons: []config.Button{
			{Name: "bold", Kind: config.KindWrap, Open: "__"},
			{Name: "strike", Kind: config.KindWrap, Open: "~~"},
			{Name: "h1", Kind: config.KindHeader, Marker: "#"},
		},
	}

	table, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer table.Close()

	want := append(DefaultTable().Names(), "strike", "h1")
	if got := table.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	bold, _ := table.Find("bold")
	if bold != (markup.Wrap{Open: "__", Close: "__"}) {
		t.Errorf("bold = %#v, want __ wrap", bold)
	}
}

func TestFromConfigWithoutDefaults(t *testing.T) {
	cfg := config.Toolbar{
		Buttons: []config.Button{
			{Name: "todo", Kind: config.KindList, Bullet: "- [ ]"},
			{Name: "quote", Kind: config.KindHeader, Marker: ">"},
		},
	}

	table, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if got := table.Names(); !reflect.DeepEqual(got, []string{"todo", "quote"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestFromConfigScripts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr.lua")
	if err := os.WriteFile(path, []byte(`function command(buf) return "---\n" end`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg := config.Toolbar{
		ScriptTimeout: config.Duration(time.Second),
		Buttons: []config.Button{
			{Name: "rule", Kind: config.KindScript, Script: path},
			{Name: "task", Kind: config.KindScript, Source: `function command(buf) return "- [ ] ", 0, true end`},
		},
	}
	table, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer table.Close()

	text, field := newText(t, "item", 4, 4)
	tb := New(text, table, nil)

	if res := tb.Invoke("task"); !res.OK() {
		t.Fatalf("task: %v", res)
	}
	if got := field.Value(); got != "- [ ] item" {
		t.Errorf("value = %q", got)
	}

	if res := tb.Invoke("rule"); !res.OK() {
		t.Fatalf("rule: %v", res)
	}
	if got := field.Value(); got != "---\n- [ ] item" {
		t.Errorf("value = %q", got)
	}
}

func TestFromConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		button config.Button
	}{
		{"wrap without open", config.Button{Name: "x", Kind: config.KindWrap}},
		{"header without marker", config.Button{Name: "x", Kind: config.KindHeader}},
		{"list without bullet", config.Button{Name: "x", Kind: config.KindList}},
		{"script without body", config.Button{Name: "x", Kind: config.KindScript}},
		{"unknown kind", config.Button{Name: "x", Kind: "macro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(config.Toolbar{Buttons: []config.Button{tt.button}})
			if !errors.Is(err, ErrInvalidButton) {
				t.Errorf("err = %v, want ErrInvalidButton", err)
			}
		})
	}

	_, err := FromConfig(config.Toolbar{Buttons: []config.Button{
		{Name: "bad", Kind: config.KindScript, Source: `function command(`},
	}})
	var scriptErr *markup.ScriptError
	if !errors.As(err, &scriptErr) {
		t.Errorf("bad script: err = %v, want *markup.ScriptError", err)
	}
}

func TestTableMerge(t *testing.T) {
	base := Table{
		{Name: "a", Command: markup.Header{Marker: "#"}},
		{Name: "b", Command: markup.Header{Marker: "##"}},
	}
	merged := base.Merge(Table{
		{Name: "c", Command: markup.Header{Marker: "###"}},
		{Name: "a", Command: markup.Header{Marker: "!"}},
	})

	if got := merged.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v", got)
	}
	if cmd, _ := merged.Find("a"); cmd != (markup.Header{Marker: "!"}) {
		t.Errorf("a = %#v", cmd)
	}
	if cmd, _ := base.Find("a"); cmd != (markup.Header{Marker: "#"}) {
		t.Error("Merge must not modify the receiver")
	}
}
