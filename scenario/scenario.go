// Package scenario loads disaster-response scenarios from TOML files.
//
// A scenario names the affected areas and the road network:
//
//	name  = "flood"
//	areas = ["Riverside", "Hilltop"]
//
//	[[routes]]
//	from     = "Depot"
//	to       = "Riverside"
//	distance = 7
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/response"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name   string      `toml:"name"`
	Areas  []string    `toml:"areas"`
	Routes []RouteSpec `toml:"routes"`
}

// RouteSpec is one [[routes]] table.
type RouteSpec struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Distance int64  `toml:"distance"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a scenario document.
// Unknown keys are rejected so typos do not silently drop routes.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScenario, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks for a missing name, empty labels and negative distances.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	for i, a := range s.Areas {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: areas[%d] is empty", ErrInvalidScenario, i)
		}
	}
	for i, r := range s.Routes {
		switch {
		case strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "":
			return fmt.Errorf("%w: routes[%d] has an empty endpoint", ErrInvalidScenario, i)
		case r.Distance < 0:
			return fmt.Errorf("%w: routes[%d] %s -> %s has negative distance %d",
				ErrInvalidScenario, i, r.From, r.To, r.Distance)
		}
	}

	return nil
}

// Apply adds every area and route to sys, in file order.
func (s *Scenario) Apply(sys *response.System) error {
	for _, a := range s.Areas {
		if err := sys.AddArea(a); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	for _, r := range s.Routes {
		if err := sys.AddRoute(r.From, r.To, r.Distance); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}

	return nil
}
