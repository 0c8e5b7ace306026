package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	talksFixture  = "../internal/conference/testdata/talks.txt"
	goldenFixture = "../internal/conference/testdata/schedule.golden"
)

func TestScheduleMatchesGolden(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "", "schedule", talksFixture)
	require.NoError(t, err)
	assert.Equal(t, readFixture(t, goldenFixture), stdout)
}

func TestScheduleReadsStdin(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "Overdoing it in Python 45min\nLua for the Masses lightning\n", "schedule", "-")
	require.NoError(t, err)
	assert.Equal(t, "Track 1\n09:00AM Overdoing it in Python 45min\n09:45AM Lua for the Masses lightning\n09:50AM Lunch\n01:00PM Networking Event\n", stdout)
}

func TestScheduleParseErrorPrintsNothing(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "Good Talk 30min\nBadLine\n", "schedule", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "'BadLine'")
	assert.Empty(t, stdout)
}

func TestScheduleStrandedTalkKeepsCompletedTracks(t *testing.T) {
	isolateHome(t)

	stdout, stderr, err := executeCLI(t, "Endless Keynote 300min\nShort One 30min\n", "schedule", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduling)
	assert.Contains(t, stdout, "Track 1\n09:00AM Short One 30min\n")
	assert.Contains(t, stderr, "could not schedule the remaining 1 talks")
}

func TestScheduleMissingFileIsIOError(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCLI(t, "", "schedule", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.Contains(t, err.Error(), "for reading")
}

func TestScheduleRequiresExactlyOneArgument(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCLI(t, "", "schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestScheduleJSONOutput(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "", "schedule", talksFixture, "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var decoded scheduleJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Len(t, decoded.Tracks, 2)
	first := decoded.Tracks[0]
	assert.Equal(t, 1, first.Number)
	require.Len(t, first.Sessions, 2)
	assert.Equal(t, "morning", first.Sessions[0].Name)
	assert.Equal(t, "09:00AM", first.Sessions[0].Start)
	assert.Equal(t, "Lunch", first.Sessions[0].Event.Name)
	assert.Equal(t, "12:00PM", first.Sessions[0].Event.At)
	assert.Equal(t, "Networking Event", first.Sessions[1].Event.Name)

	var count int
	for _, track := range decoded.Tracks {
		for _, session := range track.Sessions {
			count += len(session.Talks)
		}
	}
	assert.Equal(t, 19, count)
}

func TestScheduleJSONWithEmptyInput(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "", "schedule", "-", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tracks":[]}`, stdout)
}

func TestScheduleJSONKeepsPartialTracksOnSchedulingError(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "Endless Keynote 300min\nShort One 30min\n", "schedule", "-", "--json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduling)

	var decoded scheduleJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Len(t, decoded.Tracks, 1)
}

func TestSchedulePrettyOutput(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "", "schedule", talksFixture, "--pretty")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Conference Schedule")
	assert.Contains(t, stdout, "tracks: 2  talks: 19")
	assert.Contains(t, stdout, "Track 1")
	assert.Contains(t, stdout, "% used")
}

func TestScheduleJSONAndPrettyAreExclusive(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCLI(t, "", "schedule", talksFixture, "--json", "--pretty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestScheduleWritesOutputFile(t *testing.T) {
	isolateHome(t)
	target := filepath.Join(t.TempDir(), "schedule.txt")

	stdout, _, err := executeCLI(t, "", "schedule", talksFixture, "--output", target)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, readFixture(t, goldenFixture), readFixture(t, target))
}

func TestScheduleUsesConfigLayout(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
sessions = ["single"]

[single]
start = "10:00"
capacity = "1h"
event = "Goodbye"
`), 0o644))

	stdout, _, err := executeCLI(t, "First 60min\nSecond 30min\n", "schedule", "-", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "Track 1\n10:00AM First 60min\n11:00AM Goodbye\n\nTrack 2\n10:00AM Second 30min\n10:30AM Goodbye\n", stdout)
}

func TestScheduleInvalidConfigFails(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[morning]\ncapacity = \"0s\"\n"), 0o644))

	_, _, err := executeCLI(t, "", "schedule", talksFixture, "--config", configPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLayout)
}

func TestScheduleRejectsUnknownFormat(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCLI(t, "", "schedule", talksFixture, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestScheduleVerboseLogsToStderr(t *testing.T) {
	isolateHome(t)

	stdout, stderr, err := executeCLI(t, "", "schedule", talksFixture, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, readFixture(t, goldenFixture), stdout)
	assert.Contains(t, stderr, "track=1")
}

func TestConvertThenScheduleCatalog(t *testing.T) {
	isolateHome(t)
	catalogPath := filepath.Join(t.TempDir(), "talks.yaml")

	_, _, err := executeCLI(t, "", "convert", talksFixture, "--to", "yaml", "--output", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, readFixture(t, catalogPath), "lightning: true")

	stdout, _, err := executeCLI(t, "", "schedule", catalogPath)
	require.NoError(t, err)
	assert.Equal(t, readFixture(t, goldenFixture), stdout)
}

func TestConvertToTOMLOnStdout(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "Lua for the Masses lightning\nRuby on Rails Legacy App Maintenance 60min\n", "convert", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version = 1")
	assert.Contains(t, stdout, "Lua for the Masses")
	assert.Contains(t, stdout, "lightning = true")
	assert.Contains(t, stdout, "minutes = 60")
}

func TestConvertRejectsTextTarget(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCLI(t, "", "convert", talksFixture, "--to", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog format")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestResolveInputFormat(t *testing.T) {
	tests := []struct {
		format inputFormat
		path   string
		want   inputFormat
	}{
		{format: inputFormatAuto, path: "talks.txt", want: inputFormatText},
		{format: inputFormatAuto, path: "-", want: inputFormatText},
		{format: inputFormatAuto, path: "talks.TOML", want: inputFormatTOML},
		{format: inputFormatAuto, path: "talks.yml", want: inputFormatYAML},
		{format: inputFormatText, path: "talks.yaml", want: inputFormatText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveInputFormat(tt.format, tt.path), tt.path)
	}
}

func isolateHome(t *testing.T) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"TRACKS_SESSIONS", "TRACKS_MORNING_CAPACITY", "TRACKS_EVENING_CAPACITY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func readFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func executeCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSchedulePrettyCanHideUtilisation(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCLI(t, "", "schedule", talksFixture, "--pretty", "--hide-utilisation")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Track 2")
	assert.NotContains(t, stdout, "% used")
}

func TestTerminalWidthIsZeroForNonTerminals(t *testing.T) {
	assert.Zero(t, terminalWidth(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Zero(t, terminalWidth(f))
}

func TestNewLoggerHonoursVerbose(t *testing.T) {
	var buf bytes.Buffer

	quiet := newLogger(&buf, false)
	quiet.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	loud := newLogger(&buf, true)
	loud.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, newLogger(os.Stderr, false).GetLevel())
}
