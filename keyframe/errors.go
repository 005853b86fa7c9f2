package keyframe

import "errors"

var (
	// ErrNotFound is returned for tracks or control points that don't exist.
	ErrNotFound = errors.New("not found")
	// ErrExists is returned when adding a track whose name is taken.
	ErrExists = errors.New("already exists")
	// ErrUnknownKind is returned for curve kinds that have no evaluator.
	ErrUnknownKind = errors.New("unknown curve kind")
)
