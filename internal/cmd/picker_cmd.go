package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runger/lume/internal/config"
	"github.com/runger/lume/internal/picker"
)

// runPicker runs the interactive launcher TUI. Invoked by the bare root
// command.
func runPicker(cmd *cobra.Command, args []string) error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("interactive mode needs a capable terminal (TERM=dumb)")
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	lockFd, err := acquireLock(filepath.Join(config.DefaultPaths().CacheDir, "lume.lock"))
	if err != nil {
		return err
	}
	defer releaseLock(lockFd)

	// Open /dev/tty for TUI input/output so stdout stays usable for data.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("cannot open /dev/tty: %w", err)
	}
	defer tty.Close()

	// Detect the color profile from the real tty: when stdout is a pipe
	// lipgloss would default to Ascii. SetColorProfile updates the default
	// renderer in place, so the package-level styles in picker pick it up.
	lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())

	model := picker.NewModel(eng.conductor)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	m, ok := finalModel.(picker.Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if m.IsCancelled() || m.Choice() == nil {
		return nil
	}

	chosen := *m.Choice()
	if err := eng.launcher.Launch(context.Background(), chosen); err != nil {
		return err
	}
	eng.conductor.RecordSuccess(chosen.LaunchCommand(), chosen.DisplayName(), chosen.Subtitle, chosen.AsTargetRef())
	return nil
}
