package text

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
)

const (
	shortestLine    = "N XXmin"
	minutesSuffix   = "min"
	lightningSuffix = " lightning"
)

var errInvalidUTF8 = errors.New("line is not valid UTF-8")

type Source struct {
	r io.Reader
}

var _ ports.TalkSource = (*Source)(nil)

func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

func (s *Source) Talks(ctx context.Context) ([]domain.Talk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Parse(s.r)
}

// Parse reads one talk per non-empty line, keeping input order. A line holding
// only whitespace is not empty and fails to parse.
func Parse(r io.Reader) ([]domain.Talk, error) {
	reader := bufio.NewReader(r)

	var talks []domain.Talk
	for lineNumber := 1; ; lineNumber++ {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.IOError{Op: fmt.Sprintf("read line %d from input", lineNumber), Err: err}
		}
		if raw == "" && errors.Is(err, io.EOF) {
			return talks, nil
		}

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if !utf8.ValidString(line) {
			return nil, &domain.IOError{Op: fmt.Sprintf("read line %d from input", lineNumber), Err: errInvalidUTF8}
		}

		if line != "" {
			talk, parseErr := ParseLine(line)
			if parseErr != nil {
				var pe *domain.ParseError
				if errors.As(parseErr, &pe) {
					pe.LineNumber = lineNumber
				}
				return nil, parseErr
			}
			talks = append(talks, talk)
		}

		if errors.Is(err, io.EOF) {
			return talks, nil
		}
	}
}

// ParseLine understands "<name> <M>min" and "<name> lightning".
func ParseLine(line string) (domain.Talk, error) {
	if len(line) < len(shortestLine) {
		return domain.Talk{}, &domain.ParseError{Line: line, Reason: "talk description is too short"}
	}

	switch {
	case strings.HasSuffix(line, minutesSuffix):
		sep := strings.LastIndexByte(line, ' ')
		if sep < 0 {
			return domain.Talk{}, &domain.ParseError{Line: line, Reason: "unknown talk format"}
		}

		duration, err := parseMinutes(line[sep+1 : len(line)-len(minutesSuffix)])
		if err != nil {
			return domain.Talk{}, &domain.ParseError{Line: line, Reason: "invalid duration", Err: err}
		}

		return newTalk(line, line[:sep], duration)
	case strings.HasSuffix(line, lightningSuffix):
		return newTalk(line, line[:len(line)-len(lightningSuffix)], domain.LightningDuration)
	default:
		return domain.Talk{}, &domain.ParseError{Line: line, Reason: "unknown talk format"}
	}
}

func newTalk(line, name string, duration time.Duration) (domain.Talk, error) {
	name = strings.TrimRight(name, " \t")
	if strings.TrimSpace(name) == "" {
		return domain.Talk{}, &domain.ParseError{Line: line, Reason: "talk name is empty"}
	}

	return domain.Talk{Name: name, Duration: duration}, nil
}

// MinutesToDuration converts a minute count, rejecting values that overflow time.Duration.
func MinutesToDuration(minutes uint64) (time.Duration, error) {
	if minutes > uint64(math.MaxInt64/int64(time.Minute)) {
		return 0, fmt.Errorf("%d minutes is out of range", minutes)
	}

	return time.Duration(minutes) * time.Minute, nil
}

func parseMinutes(raw string) (time.Duration, error) {
	minutes, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return MinutesToDuration(minutes)
}
