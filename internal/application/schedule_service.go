package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
	"github.com/rs/zerolog"
)

type Summary struct {
	Tracks    int
	Talks     int
	Scheduled time.Duration
}

type ScheduleService struct {
	layout domain.Layout
	logger zerolog.Logger
}

// NewScheduleService validates layout up front; an invalid layout is never scheduled against.
func NewScheduleService(layout domain.Layout, logger zerolog.Logger) (*ScheduleService, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	return &ScheduleService{layout: layout, logger: logger}, nil
}

// Run loads every talk from source before scheduling, so a bad talk aborts the
// run before the writer sees anything.
func (s *ScheduleService) Run(ctx context.Context, source ports.TalkSource, writer ports.TrackWriter) (Summary, error) {
	talks, err := source.Talks(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load talks: %w", err)
	}

	return s.Schedule(ctx, talks, writer)
}

// Schedule packs talks into consecutive tracks and hands each finished track to
// writer. It stops with a *domain.SchedulingError when a whole track places no talk.
func (s *ScheduleService) Schedule(ctx context.Context, talks []domain.Talk, writer ports.TrackWriter) (Summary, error) {
	pool := domain.NewTalkPool(talks)
	summary := Summary{}

	s.logger.Debug().
		Int("talks", pool.Len()).
		Dur("total", domain.TotalDuration(talks)).
		Msg("scheduling talks")

	for number := 1; pool.Len() > 0; number++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		before := pool.Len()
		track := s.buildTrack(number, pool)

		if pool.Len() == before {
			s.logger.Warn().
				Int("track", number).
				Int("remaining", before).
				Strs("stranded", strandedNames(pool.Remaining())).
				Dur("longest_session", s.layout.LongestCapacity()).
				Msg("no remaining talk fits any session")
			return summary, &domain.SchedulingError{Remaining: before}
		}

		if err := writer.WriteTrack(ctx, track); err != nil {
			return summary, fmt.Errorf("write track %d: %w", number, err)
		}

		placed := before - pool.Len()
		summary.Tracks++
		summary.Talks += placed
		for _, session := range track.Sessions {
			summary.Scheduled += session.Used()
		}

		s.logger.Debug().
			Int("track", number).
			Int("placed", placed).
			Int("remaining", pool.Len()).
			Msg("track complete")
	}

	return summary, nil
}

func (s *ScheduleService) buildTrack(number int, pool *domain.TalkPool) domain.Track {
	track := domain.Track{Number: number, Sessions: make([]domain.Session, 0, len(s.layout.Sessions))}
	for _, spec := range s.layout.Sessions {
		candidates := pool.Len()
		session := domain.Session{Spec: spec, Talks: pool.Pack(spec.Capacity)}
		track.Sessions = append(track.Sessions, session)

		s.logger.Debug().
			Int("track", number).
			Str("session", spec.Name).
			Int("candidates", candidates).
			Int("table_cells", (candidates+1)*(int(spec.Capacity/time.Second)+1)).
			Int("talks", len(session.Talks)).
			Dur("used", session.Used()).
			Dur("capacity", spec.Capacity).
			Msg("session packed")
	}
	return track
}

func strandedNames(talks []domain.Talk) []string {
	names := make([]string, 0, len(talks))
	for _, talk := range talks {
		names = append(names, fmt.Sprintf("%s %s", talk.Name, talk.Label()))
	}
	return names
}
