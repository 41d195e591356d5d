package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/runger/lume/internal/result"
)

var (
	searchJSON  bool
	searchLimit int
)

// searchWait bounds the one-shot commands' wait for a delivery. The
// conductor has no internal timeout; interactive callers cancel by
// superseding, one-shot callers by deadline.
const searchWait = 10 * time.Second

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search programs, packages, and history",
	Long: `Search installed programs, the package catalog, and launch history.

An empty query lists the most recent launches. URL- or path-shaped
queries return a direct open target.

Examples:
  lume search terminal         # Ranked matches for "terminal"
  lume search --json wget      # Output as JSON
  lume search                  # Recent launches`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
}

type searchOutput struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Token    string `json:"token,omitempty"`
	URL      string `json:"url,omitempty"`
	Command  string `json:"command,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Recent   bool   `json:"recent,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	results, err := searchOnce(eng, query)
	if err != nil {
		return err
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return writeSearchJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for _, r := range results {
		fmt.Println(formatResult(r))
	}

	return nil
}

// searchOnce runs a single blocking search through the conductor.
func searchOnce(eng *engine, query string) ([]result.SearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), searchWait)
	defer cancel()

	ch := make(chan []result.SearchResult, 1)
	eng.conductor.Search(ctx, query, func(rs []result.SearchResult) {
		ch <- rs
	})

	select {
	case rs := <-ch:
		return rs, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("search timed out after %s", searchWait)
	}
}

func writeSearchJSON(results []result.SearchResult) error {
	out := make([]searchOutput, 0, len(results))
	for _, r := range results {
		out = append(out, searchOutput{
			Kind:     kindString(r.Kind),
			Name:     r.DisplayName(),
			Path:     r.Path,
			Token:    r.Token,
			URL:      r.URL,
			Command:  r.Command,
			Subtitle: r.Subtitle,
			Recent:   r.IsRecent,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func kindString(k result.Kind) string {
	switch k {
	case result.KindInstalledProgram:
		return "program"
	case result.KindCatalogEntry:
		return "package"
	case result.KindHistoryCommand:
		return "command"
	case result.KindURLTarget:
		return "url"
	case result.KindFileSystemEntry:
		return "file"
	}
	return "unknown"
}

// formatResult renders one result as a plain text line.
func formatResult(r result.SearchResult) string {
	line := r.DisplayName()
	switch r.Kind {
	case result.KindInstalledProgram:
		line += "\t" + r.Path
	case result.KindCatalogEntry:
		tag := "package"
		if r.Deprecated {
			tag = "package, deprecated"
		}
		line += "\t[" + tag + "] " + r.Description
	case result.KindURLTarget:
		line = r.URL
	case result.KindFileSystemEntry:
		line = r.Path
	}
	if r.IsRecent {
		line += "\t(recent)"
	}
	return line
}
