// SPDX-License-Identifier: MIT
//
// File: seed.go
// Role: YAML network seed: parsing, validation and loading into Memory.

package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/section"
)

// ErrInvalidSeed indicates a seed file that parses but describes no valid network.
var ErrInvalidSeed = errors.New("store: invalid seed")

// Seed is a whole network with explicit IDs.
type Seed struct {
	Stations []domain.Station `yaml:"stations" validate:"dive"`
	Lines    []SeedLine       `yaml:"lines" validate:"dive"`
}

// SeedLine is a line with its sections in any order.
type SeedLine struct {
	domain.Line `yaml:",inline"`
	Sections    []domain.SectionEdge `yaml:"sections" validate:"min=1,dive"`
}

// LoadSeed reads and validates a YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read seed: %w", err)
	}

	return ParseSeed(data)
}

// ParseSeed decodes and validates YAML seed data.
// Errors: domain.ErrBlankArgument, domain.ErrInvalidRecord, ErrInvalidSeed.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if err := domain.Validate(seed); err != nil {
		return nil, fmt.Errorf("store: seed: %w", err)
	}

	return &seed, nil
}

// NewMemoryFromSeed builds a store holding exactly the seeded network.
// Later creations continue numbering after the highest seeded IDs.
func NewMemoryFromSeed(seed *Seed) (*Memory, error) {
	m := NewMemory()
	for _, st := range seed.Stations {
		if st.ID <= 0 {
			return nil, fmt.Errorf("%w: station %q has no id", ErrInvalidSeed, st.Name)
		}
		if _, dup := m.stations[st.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate station id %d", ErrInvalidSeed, st.ID)
		}
		m.stations[st.ID] = st
		m.nextStation = max(m.nextStation, st.ID)
	}
	for _, sl := range seed.Lines {
		if sl.ID <= 0 {
			return nil, fmt.Errorf("%w: line %q has no id", ErrInvalidSeed, sl.Name)
		}
		if _, dup := m.lines[sl.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate line id %d", ErrInvalidSeed, sl.ID)
		}
		if m.hasLineNamed(sl.Name) {
			return nil, fmt.Errorf("%w: line %q: %w", ErrInvalidSeed, sl.Name, domain.ErrDuplicate)
		}
		chain, err := section.New(sl.Sections...)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidSeed, sl.ID, err)
		}
		if err := m.requireStations(chain.Stations()...); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidSeed, sl.ID, err)
		}
		m.lines[sl.ID] = sl.Line
		m.nextLine = max(m.nextLine, sl.ID)
		m.chains[sl.ID] = m.assignIDs(sl.ID, nil, chain.Edges())
	}
	m.revision = 1

	return m, nil
}
