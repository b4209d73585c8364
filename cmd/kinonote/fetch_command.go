package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kinonote/internal/history"
	"kinonote/internal/kinopoisk"
	"kinonote/internal/transform"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <id>",
		Short: "Fetch one title and print its flat field set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}

			record, _, err := fetchRecord(ctx, cmd, id)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(record); err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
			return nil
		},
	}
	return cmd
}

// fetchRecord runs the fetch-by-id pipeline: API call, transformation,
// history entry. It returns both the flat record and the raw payload.
func fetchRecord(ctx *commandContext, cmd *cobra.Command, id int64) (transform.FlatRecord, *kinopoisk.Movie, error) {
	client, err := ctx.newClient()
	if err != nil {
		return nil, nil, err
	}
	movie, err := client.MovieByID(cmd.Context(), id)
	if err != nil {
		return nil, nil, ctx.userError("fetch", err)
	}

	directors, actors, writers, producers := ctx.rolePaths()
	record := transform.Transform(movie, transform.RolePaths{
		Directors: directors,
		Actors:    actors,
		Writers:   writers,
		Producers: producers,
	})

	ctx.recordHistory(cmd.Context(), history.Entry{
		RequestID: uuid.NewString(),
		Kind:      history.KindFetch,
		MovieID:   movie.ID,
		Title:     movie.Name,
		Year:      movie.Year,
	})
	return record, movie, nil
}
