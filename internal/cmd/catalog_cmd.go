package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the package catalog",
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info <name-or-token>",
	Short: "Show a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogInfo,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog size",
	RunE:  runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogInfoCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}

func runCatalogInfo(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	e := eng.catalog.LookupByNameOrToken(strings.ToLower(args[0]))
	if e == nil {
		e = eng.catalog.LookupByProvidedFilename(strings.ToLower(args[0]))
	}
	if e == nil {
		return fmt.Errorf("no catalog entry for %q", args[0])
	}

	fmt.Printf("%s (%s)\n", e.DisplayName(), e.FullToken)
	if e.Description != "" {
		fmt.Printf("  %s\n", e.Description)
	}
	if e.Homepage != "" {
		fmt.Printf("  homepage: %s\n", e.Homepage)
	}
	if len(e.AppFilenames) > 0 {
		fmt.Printf("  provides: %s\n", strings.Join(e.AppFilenames, ", "))
	}
	if e.Deprecated {
		fmt.Println("  deprecated")
	}
	return nil
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	fmt.Printf("%d catalog entries\n", eng.catalog.Len())
	return nil
}
