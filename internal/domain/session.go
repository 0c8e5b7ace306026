package domain

import "time"

// SessionSpec describes one slot of a track. Start is measured from midnight.
type SessionSpec struct {
	Name     string
	Start    time.Duration
	Capacity time.Duration
	Event    string
}

type Event struct {
	Name string
	At   time.Duration
}

type Slot struct {
	At   time.Duration
	Talk Talk
}

type Session struct {
	Spec  SessionSpec
	Talks []Talk
}

func (s Session) Used() time.Duration {
	return TotalDuration(s.Talks)
}

func (s Session) EndsAt() time.Duration {
	return s.Spec.Start + s.Used()
}

// Slots lists every talk with its start time, in session order.
func (s Session) Slots() []Slot {
	slots := make([]Slot, 0, len(s.Talks))
	at := s.Spec.Start
	for _, talk := range s.Talks {
		slots = append(slots, Slot{At: at, Talk: talk})
		at += talk.Duration
	}
	return slots
}

func (s Session) Event() Event {
	return Event{Name: s.Spec.Event, At: s.EndsAt()}
}

type Track struct {
	Number   int
	Sessions []Session
}

func (t Track) Talks() []Talk {
	var talks []Talk
	for _, session := range t.Sessions {
		talks = append(talks, session.Talks...)
	}
	return talks
}
