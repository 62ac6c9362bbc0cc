// Package config loads deckfrag settings from the environment and an
// optional .deckfrag.json file (HuJSON, so comments and trailing commas are
// allowed). File values win over environment values; both only override the
// built-in fragment defaults where a value is actually set.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dgallion1/deckfrag/internal/fragments"
	"github.com/tailscale/hujson"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = ".deckfrag.json"

type Config struct {
	// Addr is the preview server listen address.
	Addr string

	// Global carries deck-wide fragment overrides, applied on top of the
	// built-in defaults before any per-slide directive.
	Global fragments.Directive
}

// fileConfig mirrors the on-disk shape. Pointer fields so absent keys leave
// the corresponding setting untouched.
type fileConfig struct {
	Addr         *string `json:"addr"`
	Enabled      *bool   `json:"enabled"`
	Skip         *int    `json:"skip"`
	IndexStart   *int    `json:"index_start"`
	IndexStep    *int    `json:"index_step"`
	InitRelative *bool   `json:"init_relative"`
}

// Load builds the configuration. path names an explicit config file; when
// empty, FileName is used if it exists. A named file that is missing or
// malformed is an error; the fallback file is optional.
func Load(path string) (Config, error) {
	cfg := Config{
		Addr: envOr("DECKFRAG_ADDR", ":8035"),
		Global: fragments.Directive{
			Enabled:      envBoolPtr("DECKFRAG_ENABLED"),
			Skip:         envIntPtr("DECKFRAG_SKIP"),
			IndexStart:   envIntPtr("DECKFRAG_INDEX_START"),
			IndexStep:    envIntPtr("DECKFRAG_INDEX_STEP"),
			InitRelative: envBoolPtr("DECKFRAG_INIT_RELATIVE"),
		},
	}

	required := path != ""
	if path == "" {
		path = FileName
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	var fc fileConfig
	if err := json.Unmarshal(std, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Addr != nil {
		cfg.Addr = *fc.Addr
	}
	if fc.Enabled != nil {
		cfg.Global.Enabled = fc.Enabled
	}
	if fc.Skip != nil {
		cfg.Global.Skip = fc.Skip
	}
	if fc.IndexStart != nil {
		cfg.Global.IndexStart = fc.IndexStart
	}
	if fc.IndexStep != nil {
		cfg.Global.IndexStep = fc.IndexStep
	}
	if fc.InitRelative != nil {
		cfg.Global.InitRelative = fc.InitRelative
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Global.Skip != nil && *c.Global.Skip < 0 {
		return fmt.Errorf("skip must not be negative, got %d", *c.Global.Skip)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntPtr(key string) *int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func envBoolPtr(key string) *bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
