package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/lume/internal/history"
)

var (
	historyLimit int
	importShell  string
	importLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and edit launch history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent launches, most recent first",
	RunE:  runHistoryList,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <command>",
	Short: "Remove an entry from launch history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all launch history",
	RunE:  runHistoryClear,
}

var historyImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed launch history from shell history",
	Long: `Seed launch history with recent commands from the shell's history file.

Examples:
  lume history import              # Detect shell from $SHELL
  lume history import --shell zsh  # Import zsh history explicitly`,
	RunE: runHistoryImport,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyImportCmd.Flags().StringVar(&importShell, "shell", "auto", "shell to import from: auto, bash, or zsh")
	historyImportCmd.Flags().IntVarP(&importLimit, "limit", "n", 50, "maximum number of commands to import")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyImportCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	entries := eng.store.Recent(historyLimit)
	if len(entries) == 0 {
		fmt.Println("No launch history.")
		return nil
	}
	for _, e := range entries {
		line := e.Command
		if e.Display != "" && e.Display != e.Command {
			line = fmt.Sprintf("%s\t(%s)", e.Display, e.Command)
		}
		fmt.Println(line)
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if !eng.conductor.RemoveHistoryEntry(args[0]) {
		return fmt.Errorf("no history entry matching %q", args[0])
	}
	fmt.Println("Removed.")
	return nil
}

func runHistoryImport(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	commands, err := history.ImportShellHistory(importShell, importLimit)
	if err != nil {
		return fmt.Errorf("reading shell history: %w", err)
	}
	if len(commands) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	// Record oldest first so the newest command ends up at the front.
	for i := len(commands) - 1; i >= 0; i-- {
		eng.store.Record(history.Entry{Command: commands[i]})
	}
	fmt.Printf("Imported %d commands.\n", len(commands))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	eng.store.Clear()
	fmt.Println("History cleared.")
	return nil
}
