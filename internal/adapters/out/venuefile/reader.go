// Package venuefile reads a venue catalogue from a YAML document.
//
// The document lists venues in the order the allocator should try them:
//
//	venues:
//	  - name: Stadium
//	    capacity: 60
//	    traffic:
//	      - {start: A, end: B, capacity: 100, load: 60}
//
// Every corridor a venue loads is described inline. A corridor appearing twice in one
// venue has its loads summed.
package venuefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/venue"
	"planner/internal/core/ports"

	"gopkg.in/yaml.v3"
)

// ErrFormat is returned when the document does not describe a valid catalogue.
var ErrFormat = fmt.Errorf("invalid venue file format: %w", ports.ErrVenueSourceInvalid)

type document struct {
	Venues []venueEntry `yaml:"venues"`
}

type venueEntry struct {
	Name     string         `yaml:"name"`
	Capacity int            `yaml:"capacity"`
	Traffic  []trafficEntry `yaml:"traffic"`
}

type trafficEntry struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Capacity int    `yaml:"capacity"`
	Load     int    `yaml:"load"`
}

// Reader implements ports.VenueReader for a file on disk.
type Reader struct {
	path string
}

// NewReader creates a reader for the YAML file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the file the reader loads.
func (r *Reader) Path() string {
	return r.path
}

// Read loads the catalogue. Nothing is returned unless the whole file is valid.
func (r *Reader) Read(ctx context.Context) ([]*venue.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venue file %s: %w", r.path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode parses a catalogue document from in.
func Decode(in io.Reader) ([]*venue.Venue, error) {
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	seen := make(map[string]struct{}, len(doc.Venues))
	venues := make([]*venue.Venue, 0, len(doc.Venues))
	for i, entry := range doc.Venues {
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("%w: venue %d: duplicate name %q", ErrFormat, i+1, entry.Name)
		}
		seen[entry.Name] = struct{}{}

		v, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: venue %d: %w", ErrFormat, i+1, err)
		}
		venues = append(venues, v)
	}

	return venues, nil
}

func (e venueEntry) toDomain() (*venue.Venue, error) {
	traffic := network.NewTraffic()
	for _, t := range e.Traffic {
		corridor, err := t.corridor()
		if err != nil {
			return nil, err
		}
		if t.Load < 0 {
			return nil, fmt.Errorf("negative load %d on %s", t.Load, corridor)
		}
		if err = traffic.UpdateTraffic(corridor, t.Load); err != nil {
			return nil, err
		}
	}

	return venue.NewVenue(e.Name, e.Capacity, traffic)
}

func (t trafficEntry) corridor() (network.Corridor, error) {
	start, startErr := kernel.NewLocation(t.Start)
	end, endErr := kernel.NewLocation(t.End)
	if err := errors.Join(startErr, endErr); err != nil {
		return network.Corridor{}, err
	}

	return network.NewCorridor(start, end, t.Capacity)
}
