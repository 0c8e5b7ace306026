package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type trackPackedMsg struct {
	talks int
}

type packingDoneMsg struct {
	err error
}

// packingProgress is shown on stderr while a --pretty schedule is computed.
type packingProgress struct {
	spinner spinner.Model
	job     tea.Cmd
	tracks  int
	talks   int
	err     error
	done    bool
}

func newPackingProgress(job tea.Cmd) packingProgress {
	return packingProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		job: job,
	}
}

func (m packingProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.job)
}

func (m packingProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trackPackedMsg:
		m.tracks++
		m.talks += msg.talks
		return m, nil
	case packingDoneMsg:
		m.done, m.err = true, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m packingProgress) View() string {
	if m.done {
		return ""
	}
	if m.tracks == 0 {
		return m.spinner.View() + " Packing sessions..."
	}
	return fmt.Sprintf("%s Packing sessions... %d tracks, %d talks placed", m.spinner.View(), m.tracks, m.talks)
}

// progressWriter reports every track the next writer accepted.
type progressWriter struct {
	next ports.TrackWriter
	send func(tea.Msg)
}

func (w progressWriter) WriteTrack(ctx context.Context, track domain.Track) error {
	if err := w.next.WriteTrack(ctx, track); err != nil {
		return err
	}
	w.send(trackPackedMsg{talks: len(track.Talks())})
	return nil
}

// runWithPackingProgress runs job with a spinner on output. Tracks still end up
// in writer; the spinner only observes them.
func runWithPackingProgress(ctx context.Context, output io.Writer, writer ports.TrackWriter, job func(context.Context, ports.TrackWriter) error) error {
	var p *tea.Program
	observed := progressWriter{next: writer, send: func(msg tea.Msg) { p.Send(msg) }}

	p = tea.NewProgram(
		newPackingProgress(func() tea.Msg {
			return packingDoneMsg{err: job(ctx, observed)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	progress, ok := final.(packingProgress)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}
	return progress.err
}
