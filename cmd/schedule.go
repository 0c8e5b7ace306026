package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	styledadapter "github.com/bnema/conference-tracks/internal/adapters/render/styled"
	"github.com/bnema/conference-tracks/internal/application"
	"github.com/bnema/conference-tracks/internal/conference"
	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type scheduleOptions struct {
	format     string
	configPath string
	outputPath string
	asJSON     bool
	pretty     bool
	hideFill   bool
	verbose    bool
}

func newScheduleCmd(app *app) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "schedule <talks-file|->",
		Short: "Pack talks into conference tracks",
		Long:  "Reads talks from a file (or stdin with \"-\") and prints one block per track. The run fails if a talk cannot be parsed or does not fit any session.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(inputFormatAuto), "Input format (auto|text|toml|yaml)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Layout config file (default: <user config dir>/tracks/config.toml)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the schedule to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Render a styled schedule with session utilisation")
	cmd.Flags().BoolVar(&opts.hideFill, "hide-utilisation", false, "Omit the session fill bars from --pretty output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log packing details to stderr")
	cmd.MarkFlagsMutuallyExclusive("json", "pretty")

	return cmd
}

func runSchedule(cmd *cobra.Command, app *app, path string, opts scheduleOptions) error {
	format, err := parseInputFormat(opts.format)
	if err != nil {
		return err
	}

	layout, err := app.loadLayout(opts.configPath)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}

	logger := app.newLogger(cmd.ErrOrStderr(), opts.verbose)

	input, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer input.Close()

	source := sourceFactory(resolveInputFormat(format, path))

	var buffered bytes.Buffer
	dest := cmd.OutOrStdout()
	if opts.outputPath != "" {
		dest = &buffered
	}

	var runErr error
	if opts.asJSON || opts.pretty {
		runErr = renderCollected(cmd, app, layout, logger, source(input), dest, opts)
	} else {
		runErr = conference.Answers(cmd.Context(), input, dest,
			conference.WithLayout(layout),
			conference.WithLogger(logger),
			conference.WithSource(source),
		)
	}

	if opts.outputPath != "" && (runErr == nil || buffered.Len() > 0) {
		if err := app.writeFile(opts.outputPath, buffered.Bytes()); err != nil {
			return errors.Join(runErr, fmt.Errorf("write schedule to %s: %w", opts.outputPath, err))
		}
	}

	return runErr
}

// renderCollected schedules everything before rendering, since JSON and styled
// output need the whole schedule. Tracks completed before a scheduling failure
// are still rendered.
func renderCollected(cmd *cobra.Command, app *app, layout domain.Layout, logger zerolog.Logger, source ports.TalkSource, out io.Writer, opts scheduleOptions) error {
	svc, err := application.NewScheduleService(layout, logger)
	if err != nil {
		return err
	}

	collector := &application.TrackCollector{}
	schedule := func(ctx context.Context, writer ports.TrackWriter) error {
		_, err := svc.Run(ctx, source, writer)
		return err
	}

	var runErr error
	if opts.pretty {
		runErr = runWithPackingProgress(cmd.Context(), cmd.ErrOrStderr(), collector, schedule)
	} else {
		runErr = schedule(cmd.Context(), collector)
	}
	if runErr != nil && !errors.Is(runErr, domain.ErrScheduling) {
		return runErr
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toScheduleJSON(collector.Tracks)); err != nil {
			return errors.Join(runErr, fmt.Errorf("encode schedule: %w", err))
		}
		return runErr
	}

	rendered := app.styledRenderer(collector.Tracks, styledadapter.RenderOptions{
		HideUtilisation: opts.hideFill,
		Width:           app.terminalWidth(out),
	})

	if _, err := fmt.Fprintln(out, rendered); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}
