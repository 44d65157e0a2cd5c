package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
)

// walkCommands visits every command in the tree depth-first.
func walkCommands(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		walkCommands(sub, fn)
	}
}

//nolint:gochecknoglobals // guards one-time help enrichment of the command tree
var enrichOnce sync.Once

// enrichCommandTree adds subcommand lists to every parent command. It runs
// once per process; later calls are no-ops.
func enrichCommandTree() {
	enrichOnce.Do(func() {
		walkCommands(rootCmd, func(cmd *cobra.Command) {
			if cmd != rootCmd {
				enrichParentLong(cmd)
			}
		})
	})
}

// enrichParentLong appends the visible subcommands, with their Short text,
// to a parent command's Long description.
func enrichParentLong(cmd *cobra.Command) {
	if !cmd.HasSubCommands() {
		return
	}

	var sb strings.Builder
	sb.WriteString(cmd.Long)
	sb.WriteString("\n\nSubcommands:\n")

	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			fmt.Fprintf(&sb, "  %-16s %s\n", sub.Name(), sub.Short)
		}
	}

	cmd.Long = sb.String()
}
