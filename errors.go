package octocase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks malformed or out-of-range input caught
	// before any geometry is built.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidGeometry marks a builder step that would produce a
	// degenerate or self-intersecting shape.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

func paramErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func geomErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}

// CompositionError reports a structural boolean operation that failed.
// It carries the offending feature so the caller can attribute the
// failure. Structural failures are fatal: no partial solid is returned.
type CompositionError struct {
	Feature string // name of the offending feature
	Op      string // operation that failed ("cut", "union", "keep-out", ...)
	Detail  string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("composition failed at %s (%s): %s", e.Feature, e.Op, e.Detail)
}

// Warning records a cosmetic operation (fillet, corner rounding) that
// the kernel rejected. Cosmetic failures never abort a build; they are
// collected and surfaced next to the finished assembly.
type Warning struct {
	Feature string
	Op      string
	Detail  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s degraded: %s", w.Feature, w.Op, w.Detail)
}

func warnf(feature, op, format string, args ...interface{}) Warning {
	return Warning{Feature: feature, Op: op, Detail: fmt.Sprintf(format, args...)}
}
