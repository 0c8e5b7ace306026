package application

import (
	"context"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
)

// TrackCollector keeps every written track in memory for renderers that need the whole schedule.
type TrackCollector struct {
	Tracks []domain.Track
}

var _ ports.TrackWriter = (*TrackCollector)(nil)

func (c *TrackCollector) WriteTrack(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.Tracks = append(c.Tracks, track)
	return nil
}
