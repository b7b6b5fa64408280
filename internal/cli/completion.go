package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = newCompletionCmd()

func newCompletionCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "completion [SHELL]",
		Short: "Print the shell completion script",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := detectShell(os.Getenv("SHELL"))
			if len(args) > 0 {
				shell = args[0]
			}
			if shell == "" {
				return fmt.Errorf("cannot detect shell from $SHELL, pass one of: %s", strings.Join(validShells, ", "))
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
	}
}

func detectShell(shellPath string) string {
	name := filepath.Base(shellPath)
	for _, s := range validShells {
		if name == s || name == "pwsh" && s == "powershell" {
			return s
		}
	}
	return ""
}

// completeClassNames suggests class names for the first positional argument.
func completeClassNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := loadEnv(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	classes, err := e.source.ListClasses(commandContext(cmd))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return classNameCandidates(classes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// classNameCandidates returns the slugs of classes starting with prefix.
func classNameCandidates(classes []gym.Class, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, c := range classes {
		if strings.HasPrefix(c.Slug, prefix) {
			out = append(out, c.Slug)
		}
	}
	return out
}
