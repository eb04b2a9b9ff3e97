// Package config provides configuration management for the agentsync CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the downstream assistant configurations, which
// are owned by internal/platform and internal/patch.
//
// # Configuration File
//
// The default configuration file location is ~/.config/agentsync/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	conflict_policy: backup   # or skip
//	sync_home: /custom/sync-home   # optional
//	targets:
//	  - claude
//	  - codex
//
// Environment variables prefixed AGENT_SYNC override file values, e.g.
// AGENT_SYNC_CONFLICT_POLICY=skip.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// # Validation
//
// All loaded configurations should be checked with [Validate]:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
