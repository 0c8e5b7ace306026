package catalog

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version" yaml:"version"`
	Talks   []talkSchema `toml:"talks" yaml:"talks"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported talk catalog version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type talkSchema struct {
	Name      string `toml:"name" yaml:"name"`
	Minutes   *int64 `toml:"minutes,omitempty" yaml:"minutes,omitempty"`
	Lightning bool   `toml:"lightning,omitempty" yaml:"lightning,omitempty"`
}
