package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MorningSessionStart    = 9 * time.Hour
	MorningSessionDuration = 3 * time.Hour
	MorningEvent           = "Lunch"

	EveningSessionStart       = 13 * time.Hour
	EveningSessionMaxDuration = 4 * time.Hour
	EveningEvent              = "Networking Event"
)

// Layout is the ordered list of sessions that make up every track.
type Layout struct {
	Sessions []SessionSpec
}

func DefaultLayout() Layout {
	return Layout{
		Sessions: []SessionSpec{
			{Name: "morning", Start: MorningSessionStart, Capacity: MorningSessionDuration, Event: MorningEvent},
			{Name: "evening", Start: EveningSessionStart, Capacity: EveningSessionMaxDuration, Event: EveningEvent},
		},
	}
}

func (l Layout) Validate() error {
	if len(l.Sessions) == 0 {
		return fmt.Errorf("%w: at least one session is required", ErrInvalidLayout)
	}

	for _, spec := range l.Sessions {
		name := spec.Name
		if strings.TrimSpace(name) == "" {
			name = "unnamed"
		}
		if spec.Capacity <= 0 {
			return fmt.Errorf("%w: %s session capacity must be positive", ErrInvalidLayout, name)
		}
		if spec.Capacity%time.Second != 0 {
			return fmt.Errorf("%w: %s session capacity must be whole seconds", ErrInvalidLayout, name)
		}
		if spec.Start < 0 {
			return fmt.Errorf("%w: %s session start must not be negative", ErrInvalidLayout, name)
		}
		if spec.Start+spec.Capacity > 24*time.Hour {
			return fmt.Errorf("%w: %s session runs past midnight", ErrInvalidLayout, name)
		}
		if strings.TrimSpace(spec.Event) == "" {
			return fmt.Errorf("%w: %s session event is required", ErrInvalidLayout, name)
		}
	}

	return nil
}

// LongestCapacity is the largest talk duration the layout can ever place.
func (l Layout) LongestCapacity() time.Duration {
	var longest time.Duration
	for _, spec := range l.Sessions {
		longest = max(longest, spec.Capacity)
	}
	return longest
}
