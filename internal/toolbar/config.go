package toolbar

import (
	"fmt"

	"github.com/dshills/pagedit/internal/config"
	"github.com/dshills/pagedit/internal/markup"
	plua "github.com/dshills/pagedit/internal/plugin/lua"
)

// FromConfig builds the command table described by cfg. Configured buttons
// are layered over the default table when cfg.UseDefaults is set.
// The caller owns the returned table and must Close it to release scripts.
func FromConfig(cfg config.Toolbar, opts ...plua.StateOption) (Table, error) {
	if cfg.ScriptTimeout > 0 {
		opts = append([]plua.StateOption{plua.WithExecutionTimeout(cfg.ScriptTimeout.Std())}, opts...)
	}

	custom := make(Table, 0, len(cfg.Buttons))
	for _, b := range cfg.Buttons {
		cmd, err := buildCommand(b, opts)
		if err != nil {
			_ = custom.Close()
			return nil, err
		}
		custom = append(custom, Definition{Name: b.Name, Command: cmd})
	}

	if !cfg.UseDefaults {
		return Table{}.Merge(custom), nil
	}
	return DefaultTable().Merge(custom), nil
}

func buildCommand(b config.Button, opts []plua.StateOption) (markup.Command, error) {
	switch b.Kind {
	case config.KindWrap:
		if b.Open == "" {
			return nil, fmt.Errorf("%w: %s: wrap needs open", ErrInvalidButton, b.Name)
		}
		closer := b.Close
		if closer == "" {
			closer = b.Open
		}
		return markup.Wrap{Open: b.Open, Close: closer}, nil

	case config.KindHeader:
		if b.Marker == "" {
			return nil, fmt.Errorf("%w: %s: header needs marker", ErrInvalidButton, b.Name)
		}
		return markup.Header{Marker: b.Marker}, nil

	case config.KindList:
		if b.Bullet == "" {
			return nil, fmt.Errorf("%w: %s: list needs bullet", ErrInvalidButton, b.Name)
		}
		return markup.ListItem{Bullet: b.Bullet}, nil

	case config.KindScript:
		var (
			s   *markup.Script
			err error
		)
		switch {
		case b.Source != "":
			s, err = markup.NewScript(b.Name, b.Source, opts...)
		case b.Script != "":
			s, err = markup.LoadScript(b.Name, b.Script, opts...)
		default:
			return nil, fmt.Errorf("%w: %s: script needs source or script", ErrInvalidButton, b.Name)
		}
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidButton, b.Name, b.Kind)
	}
}
