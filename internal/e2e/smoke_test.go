package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	fixtures := filepath.Join(repoRoot(t), "internal", "conference", "testdata")

	stdout, stderr, err := runTracks(t, binaryPath, home, "", "schedule", filepath.Join(fixtures, "talks.txt"))
	require.NoError(t, err, "stderr: %s", stderr)

	golden, err := os.ReadFile(filepath.Join(fixtures, "schedule.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(golden), stdout)
}

func TestSmokeFailureExitsNonZero(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runTracks(t, binaryPath, home, "Good Talk 30min\nBadLine\n", "schedule", "-")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "could not parse talk from 'BadLine'")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tracks-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tracks")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tracks binary: %s", string(output))
	return binaryPath
}

func runTracks(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+filepath.Join(home, ".config"))
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
