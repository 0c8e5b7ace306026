package styled

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	// HideUtilisation drops the per-session fill bar.
	HideUtilisation bool
	// Width cuts every line to this many cells when positive.
	Width int
}

// Render draws the whole schedule with lipgloss.
func Render(tracks []domain.Track, opts RenderOptions) string {
	out := renderView(tracks, opts, newStyles())
	if opts.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(opts.Width).Render(out)
	}
	return out
}

func renderView(tracks []domain.Track, opts RenderOptions, s styles) string {
	talks := 0
	for _, track := range tracks {
		talks += len(track.Talks())
	}

	lines := []string{
		s.title.Render("Conference Schedule"),
		s.header.Render(fmt.Sprintf("tracks: %d  talks: %d", len(tracks), talks)),
	}

	if len(tracks) == 0 {
		lines = append(lines, s.empty.Render("No talks to schedule."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, track := range tracks {
		lines = append(lines, s.section.Render(renderTrack(track, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTrack(track domain.Track, opts RenderOptions, s styles) string {
	parts := []string{s.track.Render(fmt.Sprintf("Track %d", track.Number))}
	for _, session := range track.Sessions {
		parts = append(parts, renderSession(session, opts, s)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSession(session domain.Session, opts RenderOptions, s styles) []string {
	lines := make([]string, 0, len(session.Talks)+2)

	heading := s.session.Render(sessionTitle(session))
	if !opts.HideUtilisation {
		heading = lipgloss.JoinHorizontal(lipgloss.Top, heading, " ", renderFillBar(session, s))
	}
	lines = append(lines, heading)

	for _, slot := range session.Slots() {
		label := s.label.Render(slot.Talk.Label())
		if slot.Talk.IsLightning() {
			label = s.lightning.Render(slot.Talk.Label())
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			"  ",
			s.clock.Render(domain.FormatClock(slot.At)),
			" ",
			s.talk.Render(sanitizeForTerminal(slot.Talk.Name)),
			" ",
			label,
		))
	}

	event := session.Event()
	lines = append(lines, lipgloss.JoinHorizontal(
		lipgloss.Top,
		"  ",
		s.clock.Render(domain.FormatClock(event.At)),
		" ",
		s.event.Render(event.Name),
	))

	return lines
}

func sessionTitle(session domain.Session) string {
	name := strings.TrimSpace(session.Spec.Name)
	if name == "" {
		name = "session"
	}

	return fmt.Sprintf("%s %s-%s", name,
		domain.FormatClock(session.Spec.Start),
		domain.FormatClock(session.Spec.Start+session.Spec.Capacity),
	)
}

func renderFillBar(session domain.Session, s styles) string {
	percent := fillPercent(session)
	filled := int(math.Round(float64(barWidth) * percent / 100))
	filled = max(0, min(filled, barWidth))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", barWidth-filled)),
		s.barBracket.Render("]"),
		" ",
		s.header.Render(fmt.Sprintf("%3.0f%% used", percent)),
	)
}

func fillPercent(session domain.Session) float64 {
	if session.Spec.Capacity <= 0 {
		return 0
	}

	percent := 100 * float64(session.Used()) / float64(session.Spec.Capacity)
	return math.Max(0, math.Min(percent, 100))
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
