package cmd

import (
	"fmt"

	"github.com/bnema/conference-tracks/internal/adapters/talks/catalog"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	format     string
	to         string
	outputPath string
}

func newConvertCmd(app *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <talks-file|->",
		Short: "Convert a talk list into a TOML or YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(inputFormatAuto), "Input format (auto|text|toml|yaml)")
	cmd.Flags().StringVar(&opts.to, "to", string(catalog.FormatTOML), "Catalog format to write (toml|yaml)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the catalog to a file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, app *app, path string, opts convertOptions) error {
	format, err := parseInputFormat(opts.format)
	if err != nil {
		return err
	}

	target, err := parseInputFormat(opts.to)
	if err != nil || !catalog.Format(target).Valid() {
		return fmt.Errorf("unsupported catalog format %q (toml|yaml)", opts.to)
	}

	input, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer input.Close()

	talks, err := sourceFactory(resolveInputFormat(format, path))(input).Talks(cmd.Context())
	if err != nil {
		return fmt.Errorf("load talks: %w", err)
	}

	data, err := catalog.Encode(talks, catalog.Format(target))
	if err != nil {
		return err
	}

	if opts.outputPath != "" {
		if err := app.writeFile(opts.outputPath, data); err != nil {
			return fmt.Errorf("write catalog to %s: %w", opts.outputPath, err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
