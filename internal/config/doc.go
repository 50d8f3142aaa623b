// Package config provides pagedit's configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PAGEDIT_*, highest priority
//	├─────────────────────────────┤
//	│  2. Config File             │  ← config.toml or config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Each layer is read into a generic map by the loader sub-package and the
// maps are merged with loader.DeepMerge before decoding into Config.
// Lists such as toolbar.buttons are replaced, not appended.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//
// Watch reloads the file when it changes:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    ...
//	})
package config
