package ports

import (
	"context"

	"github.com/bnema/conference-tracks/internal/domain"
)

// TrackWriter receives each track as soon as it is complete.
type TrackWriter interface {
	WriteTrack(ctx context.Context, track domain.Track) error
}
