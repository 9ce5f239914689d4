package cli

import (
	"github.com/spf13/cobra"

	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for logoexport.

Bash:
  $ source <(logoexport completion bash)

Zsh:
  $ logoexport completion zsh > "${fpath[1]}/_logoexport"

Fish:
  $ logoexport completion fish > ~/.config/fish/completions/logoexport.fish

PowerShell:
  PS> logoexport completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}

// registerFlagCompletions wires value completion for domain flags on cmd and
// all of its subcommands.
func registerFlagCompletions(cmd *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}

	var platforms []string
	for _, p := range manifest.Platforms {
		platforms = append(platforms, string(p))
	}
	var tools []string
	for _, t := range instructions.DefaultTools() {
		tools = append(tools, t.Name)
	}

	if cmd.Flags().Lookup("only") != nil {
		_ = cmd.RegisterFlagCompletionFunc("only", fixed(platforms...))
	}
	if cmd.Flags().Lookup("tools") != nil {
		_ = cmd.RegisterFlagCompletionFunc("tools", fixed(tools...))
	}
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", fixed("toml", "yaml"))
	}
	if cmd.PersistentFlags().Lookup("manifest") != nil {
		_ = cmd.MarkPersistentFlagFilename("manifest", "toml", "yaml", "yml")
	}

	for _, sub := range cmd.Commands() {
		registerFlagCompletions(sub)
	}
}
