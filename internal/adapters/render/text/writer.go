package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
)

// Writer prints tracks in the plain schedule format, one blank line between tracks.
type Writer struct {
	out     io.Writer
	written int
}

var _ ports.TrackWriter = (*Writer)(nil)

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteTrack(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	if w.written > 0 {
		b.WriteString("\n")
	}
	b.WriteString(FormatTrack(track))

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return &domain.IOError{Op: fmt.Sprintf("write track %d", track.Number), Err: err}
	}
	w.written++

	return nil
}

func FormatTrack(track domain.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Track %d\n", track.Number)
	for _, session := range track.Sessions {
		b.WriteString(FormatSession(session))
	}
	return b.String()
}

// FormatSession renders every talk at its start time followed by the session event.
func FormatSession(session domain.Session) string {
	var b strings.Builder
	for _, slot := range session.Slots() {
		fmt.Fprintf(&b, "%s %s %s\n", domain.FormatClock(slot.At), slot.Talk.Name, slot.Talk.Label())
	}

	event := session.Event()
	fmt.Fprintf(&b, "%s %s\n", domain.FormatClock(event.At), event.Name)
	return b.String()
}
