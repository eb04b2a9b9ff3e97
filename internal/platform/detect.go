package platform

import "os"

// InstallStatus indicates the installation state of a downstream platform.
type InstallStatus string

const (
	// StatusInstalled indicates the platform's config file exists, or the
	// target is one this tool creates on demand.
	StatusInstalled InstallStatus = "installed"

	// StatusNotInstalled indicates a patch-in-place target whose config
	// file is absent.
	StatusNotInstalled InstallStatus = "not_installed"
)

// DetectionResult contains information about a detected platform.
type DetectionResult struct {
	// Name is the platform identifier.
	Name string

	// MCPConfig is the path to the MCP configuration file. Always set,
	// even if the file does not exist.
	MCPConfig string

	// Status indicates the installation state of the platform.
	Status InstallStatus
}

// Installed reports whether the target should be synced. Targets this tool
// creates from scratch are always available; patch-in-place targets require
// their config file to exist.
func (t Target) Installed(home string) bool {
	if t.CreateIfMissing {
		return true
	}
	return fileExists(t.ConfigPath(home))
}

// Detect returns the detection result for one target.
func Detect(t Target, home string) *DetectionResult {
	status := StatusNotInstalled
	if t.Installed(home) {
		status = StatusInstalled
	}
	return &DetectionResult{
		Name:      t.Name,
		MCPConfig: t.ConfigPath(home),
		Status:    status,
	}
}

// DetectAll returns detection results for every target in reconciliation order.
func DetectAll(home string) []*DetectionResult {
	results := make([]*DetectionResult, 0, len(targets))
	for _, t := range targets {
		results = append(results, Detect(t, home))
	}
	return results
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
