package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/conference-tracks/internal/adapters/talks/text"
	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/bnema/conference-tracks/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func (f Format) Valid() bool {
	switch f {
	case FormatTOML, FormatYAML:
		return true
	default:
		return false
	}
}

type Source struct {
	r      io.Reader
	format Format
}

var _ ports.TalkSource = (*Source)(nil)

func NewSource(r io.Reader, format Format) *Source {
	return &Source{r: r, format: format}
}

func (s *Source) Talks(ctx context.Context) ([]domain.Talk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, &domain.IOError{Op: fmt.Sprintf("read %s talk catalog", s.format), Err: err}
	}

	return Decode(data, s.format)
}

// Decode turns a TOML or YAML talk catalog into talks, in catalog order.
func Decode(data []byte, format Format) ([]domain.Talk, error) {
	var file fileSchema
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, &domain.ParseError{Line: "toml catalog", Reason: "decode catalog", Err: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, &domain.ParseError{Line: "yaml catalog", Reason: "decode catalog", Err: err}
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	if err := file.validateVersion(); err != nil {
		return nil, &domain.ParseError{Line: string(format) + " catalog", Err: err}
	}
	file.applyDefaults()

	talks := make([]domain.Talk, 0, len(file.Talks))
	for i, entry := range file.Talks {
		talk, err := fromSchema(entry)
		if err != nil {
			return nil, &domain.ParseError{
				Line:   fmt.Sprintf("talks[%d] %q", i, entry.Name),
				Reason: err.Error(),
			}
		}
		talks = append(talks, talk)
	}

	return talks, nil
}

func fromSchema(entry talkSchema) (domain.Talk, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return domain.Talk{}, fmt.Errorf("talk name is empty")
	}

	switch {
	case entry.Lightning && entry.Minutes != nil:
		return domain.Talk{}, fmt.Errorf("set either minutes or lightning, not both")
	case entry.Lightning:
		return domain.Talk{Name: name, Duration: domain.LightningDuration}, nil
	case entry.Minutes == nil:
		return domain.Talk{}, fmt.Errorf("minutes or lightning is required")
	case *entry.Minutes < 0:
		return domain.Talk{}, fmt.Errorf("minutes must not be negative")
	}

	duration, err := text.MinutesToDuration(uint64(*entry.Minutes))
	if err != nil {
		return domain.Talk{}, err
	}

	return domain.Talk{Name: name, Duration: duration}, nil
}

func toSchema(talk domain.Talk) talkSchema {
	if talk.IsLightning() {
		return talkSchema{Name: talk.Name, Lightning: true}
	}

	minutes := int64(talk.Duration / time.Minute)
	return talkSchema{Name: talk.Name, Minutes: &minutes}
}

// Encode writes talks as a catalog, the inverse of Decode.
func Encode(talks []domain.Talk, format Format) ([]byte, error) {
	file := fileSchema{Talks: make([]talkSchema, 0, len(talks))}
	file.applyDefaults()
	for _, talk := range talks {
		file.Talks = append(file.Talks, toSchema(talk))
	}

	switch format {
	case FormatTOML:
		data, err := toml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode toml catalog: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode yaml catalog: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}
