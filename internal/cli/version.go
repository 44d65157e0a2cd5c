package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo holds version information injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// versionCmd prints build information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the quill version, commit and build date.

With -o json the Go version and platform are included.`,
	Example: `  quill version
  quill version -o json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.GroupID = "config"
}

type versionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func runVersion(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if isJSON(formatter) {
		info := withDefaults(buildInfo)
		return writeJSON(w, versionResult{
			Version:   info.Version,
			Commit:    info.Commit,
			Date:      info.Date,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		})
	}
	out(w, "quill %s\n", formatVersion(buildInfo))
	return nil
}

// withDefaults fills empty build fields with placeholders.
func withDefaults(info BuildInfo) BuildInfo {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// formatVersion renders build info as "v1.2.3 (commit: abc1234, built: 2024-01-15)".
func formatVersion(info BuildInfo) string {
	info = withDefaults(info)
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}
