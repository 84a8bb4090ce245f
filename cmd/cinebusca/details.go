package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/infrastructure"
	"github.com/Agurato/cinebusca/internal/model"
)

// Number of cast members printed
const topCastSize = 6

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show the details and credits of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid movie ID '%s'", args[0])
	}

	_, metadata, err := setup()
	if err != nil {
		return err
	}

	detail, err := business.NewDetailLoader(metadata).LoadDetails(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), detail)
	}
	printDetails(cmd.OutOrStdout(), detail)
	return nil
}

func printDetails(w io.Writer, detail *model.MovieDetail) {
	title := detail.Title
	if detail.Year() > 0 {
		title = fmt.Sprintf("%s (%d)", title, detail.Year())
	}
	fmt.Fprintln(w, title)
	if detail.Tagline != "" {
		fmt.Fprintf(w, "  %s\n", detail.Tagline)
	}
	fmt.Fprintln(w)

	printField(w, "Rating", fmt.Sprintf("%.1f", detail.VoteAverage))
	if detail.Runtime > 0 {
		printField(w, "Runtime", fmt.Sprintf("%d min", detail.Runtime))
	}
	printField(w, "Genres", strings.Join(lo.Map(detail.Genres, func(genre model.Genre, _ int) string {
		return genre.Name
	}), ", "))
	printField(w, "Directors", crewNames(detail.Credits.Directors()))
	printField(w, "Writers", crewNames(detail.Credits.Writers()))
	printField(w, "Cast", strings.Join(lo.Map(detail.Credits.TopCast(topCastSize), func(member model.CastMember, _ int) string {
		if member.Character == "" {
			return member.Name
		}
		return fmt.Sprintf("%s (%s)", member.Name, member.Character)
	}), ", "))
	printField(w, "Countries", strings.Join(detail.ProductionCountries, ", "))
	printField(w, "Poster", infrastructure.GetPosterLink(detail.PosterPath))

	if detail.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", detail.Overview)
	}
}

func printField(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-10s %s\n", name+":", value)
}

func crewNames(crew []model.CrewMember) string {
	return strings.Join(lo.Map(crew, func(member model.CrewMember, _ int) string {
		return member.Name
	}), ", ")
}
