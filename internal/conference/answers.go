// Package conference exposes the single entry point that turns a talk list
// into a printed track schedule.
package conference

import (
	"bufio"
	"context"
	"errors"
	"io"

	rendertext "github.com/bnema/conference-tracks/internal/adapters/render/text"
	talkstext "github.com/bnema/conference-tracks/internal/adapters/talks/text"
	"github.com/bnema/conference-tracks/internal/application"
	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
	"github.com/rs/zerolog"
)

type options struct {
	layout domain.Layout
	logger zerolog.Logger
	source func(io.Reader) ports.TalkSource
}

type Option func(*options)

func WithLayout(layout domain.Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource replaces the line-oriented talk parser, e.g. with a catalog decoder.
func WithSource(source func(io.Reader) ports.TalkSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// Answers reads talks from input and writes the schedule to output. Nothing is
// written when a talk fails to parse; on a scheduling failure the tracks
// completed so far are written before the error is returned.
func Answers(ctx context.Context, input io.Reader, output io.Writer, opts ...Option) error {
	o := options{
		layout: domain.DefaultLayout(),
		logger: zerolog.Nop(),
		source: func(r io.Reader) ports.TalkSource {
			return talkstext.NewSource(r)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	svc, err := application.NewScheduleService(o.layout, o.logger)
	if err != nil {
		return err
	}

	buffered := bufio.NewWriter(output)
	summary, runErr := svc.Run(ctx, o.source(input), rendertext.NewWriter(buffered))

	if flushErr := buffered.Flush(); flushErr != nil {
		return errors.Join(runErr, &domain.IOError{Op: "flush schedule output", Err: flushErr})
	}
	if runErr != nil {
		return runErr
	}

	o.logger.Info().
		Int("tracks", summary.Tracks).
		Int("talks", summary.Talks).
		Dur("scheduled", summary.Scheduled).
		Msg("schedule complete")

	return nil
}
