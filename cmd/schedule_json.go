package cmd

import (
	"time"

	"github.com/bnema/conference-tracks/internal/domain"
)

type scheduleJSON struct {
	Tracks []trackJSON `json:"tracks"`
}

type trackJSON struct {
	Number   int           `json:"number"`
	Sessions []sessionJSON `json:"sessions"`
}

type sessionJSON struct {
	Name  string     `json:"name"`
	Start string     `json:"start"`
	Talks []talkJSON `json:"talks"`
	Event eventJSON  `json:"event"`
}

type talkJSON struct {
	Start     string `json:"start"`
	Name      string `json:"name"`
	Minutes   int64  `json:"minutes"`
	Lightning bool   `json:"lightning,omitempty"`
}

type eventJSON struct {
	Name string `json:"name"`
	At   string `json:"at"`
}

func toScheduleJSON(tracks []domain.Track) scheduleJSON {
	out := scheduleJSON{Tracks: make([]trackJSON, 0, len(tracks))}
	for _, track := range tracks {
		t := trackJSON{Number: track.Number, Sessions: make([]sessionJSON, 0, len(track.Sessions))}
		for _, session := range track.Sessions {
			s := sessionJSON{
				Name:  session.Spec.Name,
				Start: domain.FormatClock(session.Spec.Start),
				Talks: make([]talkJSON, 0, len(session.Talks)),
			}
			for _, slot := range session.Slots() {
				s.Talks = append(s.Talks, talkJSON{
					Start:     domain.FormatClock(slot.At),
					Name:      slot.Talk.Name,
					Minutes:   int64(slot.Talk.Duration / time.Minute),
					Lightning: slot.Talk.IsLightning(),
				})
			}
			event := session.Event()
			s.Event = eventJSON{Name: event.Name, At: domain.FormatClock(event.At)}
			t.Sessions = append(t.Sessions, s)
		}
		out.Tracks = append(out.Tracks, t)
	}
	return out
}
