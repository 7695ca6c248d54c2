package commands

import (
	"os"
	"runtime/debug"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Built   string `json:"built" yaml:"built"`
}

// buildVersionInfo fills in values that were not stamped at link time from
// the binary's embedded build info, so `go install` builds still report
// something useful.
func buildVersionInfo(version, commit, date string) versionInfo {
	info := versionInfo{Version: version, Commit: commit, Built: date}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Built == "unknown" {
				info.Built = setting.Value
			}
		}
	}

	return info
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the yougile CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWithFormat(buildVersionInfo(version, commit, date), func(info versionInfo) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Version", info.Version)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)

				_ = table.Render()

				return nil
			})
		},
	}
}
