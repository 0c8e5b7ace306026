package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	configadapter "github.com/bnema/conference-tracks/internal/adapters/config"
	fileoutput "github.com/bnema/conference-tracks/internal/adapters/output/file"
	styledadapter "github.com/bnema/conference-tracks/internal/adapters/render/styled"
	"github.com/bnema/conference-tracks/internal/adapters/talks/catalog"
	talkstext "github.com/bnema/conference-tracks/internal/adapters/talks/text"
	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/logging"
	"github.com/bnema/conference-tracks/internal/ports"
	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const stdinPath = "-"

type inputFormat string

const (
	inputFormatAuto inputFormat = "auto"
	inputFormatText inputFormat = "text"
	inputFormatTOML inputFormat = inputFormat(catalog.FormatTOML)
	inputFormatYAML inputFormat = inputFormat(catalog.FormatYAML)
)

type app struct {
	loadLayout     func(configPath string) (domain.Layout, error)
	newLogger      func(out io.Writer, verbose bool) zerolog.Logger
	styledRenderer func([]domain.Track, styledadapter.RenderOptions) string
	terminalWidth  func(out io.Writer) int
	writeFile      func(path string, data []byte) error
}

func wireApp() *app {
	return &app{
		loadLayout: func(configPath string) (domain.Layout, error) {
			return configadapter.Load(viper.New(), configPath)
		},
		newLogger:      newLogger,
		styledRenderer: styledadapter.Render,
		terminalWidth:  terminalWidth,
		writeFile:      fileoutput.WriteAtomic,
	}
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	if out == os.Stderr {
		return logging.Setup(verbose)
	}
	return logging.SetupWithWriter(out, verbose)
}

// terminalWidth is 0 unless out is a terminal whose size can be read.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func parseInputFormat(raw string) (inputFormat, error) {
	format := inputFormat(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case "":
		return inputFormatAuto, nil
	case inputFormatAuto, inputFormatText, inputFormatTOML, inputFormatYAML:
		return format, nil
	case "yml":
		return inputFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported input format %q (auto|text|toml|yaml)", raw)
	}
}

func resolveInputFormat(format inputFormat, path string) inputFormat {
	if format != inputFormatAuto {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return inputFormatTOML
	case ".yaml", ".yml":
		return inputFormatYAML
	default:
		return inputFormatText
	}
}

func sourceFactory(format inputFormat) func(io.Reader) ports.TalkSource {
	switch format {
	case inputFormatTOML, inputFormatYAML:
		return func(r io.Reader) ports.TalkSource {
			return catalog.NewSource(r, catalog.Format(format))
		}
	default:
		return func(r io.Reader) ports.TalkSource {
			return talkstext.NewSource(r)
		}
	}
}

// openInput returns stdin for "-"; the caller closes the result.
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == stdinPath {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.IOError{Op: fmt.Sprintf("could not open '%s' for reading", path), Err: err}
	}
	return f, nil
}
