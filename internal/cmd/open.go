package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Search and launch the top result",
	Long: `Search and immediately launch the best match.

Examples:
  lume open terminal           # Launch the top match for "terminal"
  lume open https://go.dev     # Open a URL in the browser
  lume open ~/notes.md         # Open a file`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	results, err := searchOnce(eng, args[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no match for %q", args[0])
	}

	top := results[0]
	if err := eng.launcher.Launch(context.Background(), top); err != nil {
		return err
	}

	eng.conductor.RecordSuccess(top.LaunchCommand(), top.DisplayName(), top.Subtitle, top.AsTargetRef())
	fmt.Printf("Opened %s\n", top.DisplayName())
	return nil
}
