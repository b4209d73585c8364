package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kinonote/internal/note"
	"kinonote/internal/transform"
)

func newNoteCommand(ctx *commandContext) *cobra.Command {
	var templateFlag string
	var outputFlag string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "note <id>",
		Short: "Fetch a title and render a markdown note from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			templatePath := strings.TrimSpace(templateFlag)
			if templatePath == "" {
				templatePath = cfg.Note.TemplatePath
			}
			templateText, err := loadTemplate(templatePath)
			if err != nil {
				return err
			}

			record, _, err := fetchRecord(ctx, cmd, id)
			if err != nil {
				return err
			}

			if stdout {
				fmt.Fprint(cmd.OutOrStdout(), note.Render(templateText, record))
				return nil
			}

			outputDir := strings.TrimSpace(outputFlag)
			if outputDir == "" {
				outputDir = cfg.Note.OutputDir
			}
			path, err := note.NewWriter(outputDir).Write(templateText, record)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "template file (overrides configured template_path)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output directory (overrides configured output_dir)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the rendered note instead of writing a file")
	return cmd
}

// loadTemplate reads the note template, falling back to a minimal built-in
// layout when no template is configured.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

var defaultTemplate = "# {{" + transform.FieldName + "}} ({{" + transform.FieldYear + "}})\n\n" +
	"- Type: {{" + transform.FieldType + "}}\n" +
	"- Rating: {{" + transform.FieldRatingKp + "}}\n" +
	"- Directors: {{" + transform.FieldDirectors + "}}\n" +
	"- Actors: {{" + transform.FieldActors + "}}\n\n" +
	"{{" + transform.FieldDescription + "}}\n"
