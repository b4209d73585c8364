package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kinonote/internal/history"
	"kinonote/internal/transform"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			items, err := client.Search(cmd.Context(), query)
			if err != nil {
				return ctx.userError("search", err)
			}

			ctx.recordHistory(cmd.Context(), history.Entry{
				RequestID: uuid.NewString(),
				Kind:      history.KindSearch,
				Query:     query,
			})

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					strconv.FormatInt(item.ID, 10),
					item.Name,
					item.AlternativeName,
					transform.TranslateType(item.Type),
					formatYear(item.Year),
					formatScore(item.Rating.KP),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "Name", "Alt name", "Type", "Year", "Rating"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	return cmd
}

func formatYear(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}

func formatScore(score float64) string {
	if score <= 0 {
		return ""
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}
