package commands

import (
	"log/slog"

	"github.com/fatih/color"

	"github.com/thoreinstein/agentsync/internal/config"
	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/link"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/internal/platform"
	"github.com/thoreinstein/agentsync/internal/syncer"
)

// env is the resolved execution environment shared by the commands.
type env struct {
	Home     string
	SyncHome string
	Policy   link.ConflictPolicy
}

// resolveEnv computes the home directory, sync home, and conflict policy
// from the loaded configuration.
func resolveEnv() (*env, error) {
	home, err := paths.ResolveHome()
	if err != nil {
		return nil, syncerrors.NewSystemError(err, "Set the HOME environment variable")
	}

	policy := link.PolicyBackup
	if loadedConfig != nil && loadedConfig.ConflictPolicy == config.PolicySkip {
		policy = link.PolicySkip
	}

	return &env{
		Home:     home,
		SyncHome: loadedConfig.ResolveSyncHome(home),
		Policy:   policy,
	}, nil
}

// newSyncer builds a Syncer for the resolved environment.
func (e *env) newSyncer() *syncer.Syncer {
	return syncer.New(e.Home, e.SyncHome, e.Policy, slog.Default())
}

// selectedTargets returns the targets to operate on: the --platform flag
// when given, then the config file's targets list, then all of them. Both
// sources are validated before any command runs, so lookups here cannot miss.
func selectedTargets() []platform.Target {
	names := platformFlag
	if len(names) == 0 && loadedConfig != nil {
		names = loadedConfig.Targets
	}
	if len(names) == 0 {
		return platform.Targets()
	}
	targets := make([]platform.Target, 0, len(names))
	for _, name := range names {
		if t, ok := platform.Lookup(name); ok {
			targets = append(targets, t)
		}
	}
	return targets
}

// statusGlyph renders a per-target sync outcome for terminal output.
func statusGlyph(status syncer.TargetStatus) string {
	switch status {
	case syncer.StatusSynced:
		return color.GreenString("✓")
	case syncer.StatusSkipped:
		return color.New(color.FgHiBlack).Sprint("-")
	default:
		return color.RedString("✗")
	}
}

// actionLabel renders a link reconciliation action for terminal output.
func actionLabel(res link.Result) string {
	switch res.Status {
	case link.StatusError:
		return color.RedString(string(res.Action))
	case link.StatusOK:
		return color.GreenString(string(res.Action))
	default:
		return color.New(color.FgHiBlack).Sprint(string(res.Action))
	}
}
