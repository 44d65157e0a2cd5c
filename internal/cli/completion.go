package cli

import (
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for quill.

Bash:
  # Load for the current session, or write once to the completions directory:
  $ source <(quill completion bash)
  $ quill completion bash > /etc/bash_completion.d/quill

Zsh:
  # Requires compinit. Start a new shell afterwards.
  $ quill completion zsh > "${fpath[1]}/_quill"

Fish:
  $ quill completion fish > ~/.config/fish/completions/quill.fish

PowerShell:
  PS> quill completion powershell > quill.ps1
  # and source this file from your PowerShell profile.
`,
	Example: `  quill completion bash
  quill completion zsh > "${fpath[1]}/_quill"`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(w)
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(w)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(completionCmd)
	completionCmd.GroupID = "config"
}
