package response

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/avl"
)

// Sentinel errors for System operations.
var (
	// ErrEmptyArea indicates that an area or route endpoint name is empty.
	ErrEmptyArea = errors.New("response: area name is empty")

	// ErrNegativeDistance indicates a route with a distance below zero.
	ErrNegativeDistance = errors.New("response: route distance must be non-negative")

	// ErrNoRoute indicates that the destination cannot be reached from the origin.
	ErrNoRoute = errors.New("response: no route")
)

// Distance is one row of a shortest-distance report.
type Distance struct {
	// Area is the destination label.
	Area string

	// Distance is the total route cost from the start; meaningful only when Reachable.
	Distance int64

	// Reachable is false when no road path leads from the start to Area.
	Reachable bool
}

// Route is a concrete shortest route between two places.
type Route struct {
	From     string
	To       string
	Path     []string
	Distance int64
}

// Summary is a snapshot of a System's size.
type Summary struct {
	Session   uuid.UUID
	Areas     int
	Height    int
	Rotations avl.Stats
	Places    int
	Roads     int
}

// Option configures a System.
type Option func(*options)

type options struct {
	logger  *log.Logger
	session uuid.UUID
}

// WithLogger sets the logger used for mutation and query records.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSession fixes the session ID instead of generating a random one.
func WithSession(id uuid.UUID) Option {
	return func(o *options) {
		o.session = id
	}
}

func defaultOptions() options {
	return options{
		logger:  log.New(io.Discard),
		session: uuid.New(),
	}
}
