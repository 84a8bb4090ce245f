package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search movies on TMDB",
	Long: `Search movies on TMDB.

Examples:
  cinebusca search "The Matrix"
  cinebusca search --page 2 Matrix
  cinebusca search --json Matrix`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Page of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")

	_, metadata, err := setup()
	if err != nil {
		return err
	}

	qc := business.NewQueryController(metadata, &model.SearchState{})
	if err := qc.Search(strings.Join(args, " "), page); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), qc.State())
	}
	printSearch(cmd.OutOrStdout(), qc.State())
	return nil
}

func printSearch(w io.Writer, state model.SearchState) {
	if len(state.Results) == 0 {
		fmt.Fprintf(w, "No movies found for %q\n", state.Query)
		return
	}

	fmt.Fprintf(w, "Movies for %q (page %d/%d):\n\n", state.Query, state.Cursor.Page, state.Cursor.TotalPages)
	fmt.Fprintf(w, "%8s │ %-42s │ %4s │ %4s\n", "ID", "TITLE", "YEAR", "NOTE")
	fmt.Fprintln(w, "─────────┼────────────────────────────────────────────┼──────┼─────")
	for _, movie := range state.Results {
		title := movie.Title
		if len([]rune(title)) > 42 {
			title = string([]rune(title)[:39]) + "..."
		}
		year := "-"
		if movie.Year() > 0 {
			year = fmt.Sprint(movie.Year())
		}
		fmt.Fprintf(w, "%8d │ %-42s │ %4s │ %4.1f\n", movie.ID, title, year, movie.VoteAverage)
	}
	if state.Cursor.HasNext() {
		fmt.Fprintf(w, "\nNext page: --page %d\n", state.Cursor.Page+1)
	}
}
