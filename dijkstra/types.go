package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance recorded for every known label that Source
// cannot reach. It is never produced by addition: candidates that would
// reach or exceed it are discarded.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo when dest was not reached from source.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           - starting vertex ID (must be non-empty; need not have edges).
// ReturnPath       - if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      - optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is Unreachable (no cap).
//
// InfEdgeThreshold - treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Unreachable (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold at or above which edges are non-traversable

	// err records the first invalid option; surfaced by Dijkstra.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and keep the Unreachable marker.
// A negative value is recorded and reported by Dijkstra as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.setErr(fmt.Errorf("%w (got %d)", ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (a closed road).
// A zero or negative value is reported by Dijkstra as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.setErr(fmt.Errorf("%w (got %d)", ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      Unreachable (no distance limit; explore all reachable).
//   - InfEdgeThreshold: Unreachable (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      Unreachable,
		InfEdgeThreshold: Unreachable,
	}
}

// Reachable returns a copy of dist without the labels marked Unreachable.
func Reachable(dist map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(dist))
	for id, d := range dist {
		if d != Unreachable {
			out[id] = d
		}
	}

	return out
}

// PathTo rebuilds the route source → … → dest from a predecessor map
// returned with WithReturnPath. It returns ErrNoPath when dest was not reached.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	if dest == source {
		return []string{source}, nil
	}
	if prev[dest] == "" {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, source, dest)
	}

	path := []string{}
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
		if len(path) > len(prev)+1 {
			// predecessor chain does not lead back to source
			return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, source, dest)
		}
	}
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, source, dest)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
