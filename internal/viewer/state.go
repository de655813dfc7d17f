// Package viewer holds the model state shared between the loading core and
// the surrounding application.
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/formats"
	"github.com/Faultbox/objview/pkg/geometry"
)

// ErrorCode classifies the outcome of the last load attempt.
type ErrorCode int

// Load error codes.
const (
	ErrNone           ErrorCode = 0 // Last operation succeeded
	ErrWrongExtension ErrorCode = 1 // Path does not name a .obj file
	ErrFailedToOpen   ErrorCode = 2 // File could not be opened or read
	ErrIncorrectData  ErrorCode = 3 // A vertex line failed strict parsing
)

// String returns a human-readable error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "no error"
	case ErrWrongExtension:
		return "wrong file extension"
	case ErrFailedToOpen:
		return "failed to open file"
	case ErrIncorrectData:
		return "incorrect data in file"
	default:
		return fmt.Sprintf("unknown error (%d)", int(c))
	}
}

// State is the single source of truth for the loaded model: the accepted
// file name, the outcome of the last load, the geometry buffers, and the
// last transformation applied.
//
// A State is owned by exactly one caller and has no internal locking;
// concurrent use of the same instance must be serialized by the owner
// (typically a single-threaded UI dispatch).
//
// After a failed parse the buffers keep whatever geometry was read before
// the failing line. Callers must treat any non-ErrNone code as "discard the
// buffers" rather than expecting them to be empty.
type State struct {
	fileName string
	errCode  ErrorCode
	geometry geometry.Buffer
	active   geometry.Transform
}

// New returns an empty model state.
func New() *State {
	return &State{}
}

// SetFileName resets the state and accepts path as the next file to load.
// The geometry buffers and error code are cleared unconditionally; if path
// fails the extension check the code becomes ErrWrongExtension and the
// previous file name is kept out of the state.
func (s *State) SetFileName(path string) {
	s.geometry.Reset()
	s.errCode = ErrNone

	if !formats.HasOBJExtension(path) {
		s.errCode = ErrWrongExtension
		logger.Warn("rejected model path", zap.String("path", path))
		return
	}
	s.fileName = path
}

// Parse loads the current file into the geometry buffers. It is a no-op
// when an error code is already set; a fresh SetFileName call is required
// to retry after any failure.
func (s *State) Parse() {
	if s.errCode != ErrNone {
		return
	}

	err := formats.ParseOBJFile(s.fileName, &s.geometry)
	switch {
	case err == nil:
		s.errCode = ErrNone
	case errors.Is(err, formats.ErrIncorrectData):
		s.errCode = ErrIncorrectData
	default:
		s.errCode = ErrFailedToOpen
	}

	if err != nil {
		logger.Error("model load failed",
			zap.String("file", s.fileName),
			zap.Error(err),
		)
		return
	}

	logger.Info("model loaded",
		zap.String("file", s.fileName),
		zap.Int("vertices", s.geometry.VertexCount()),
		zap.Int("edges", s.geometry.EdgeCount()),
	)
}

// Err returns the error code of the last operation.
func (s *State) Err() ErrorCode {
	return s.errCode
}

// FileName returns the last accepted file path.
func (s *State) FileName() string {
	return s.fileName
}

// Geometry returns the owned geometry buffer. The buffer is shared, not
// copied; rendering callers read it and transform callers mutate it through
// Transform.
func (s *State) Geometry() *geometry.Buffer {
	return &s.geometry
}

// VertexCoordinates returns the flat (x, y, z) coordinate slice.
func (s *State) VertexCoordinates() []float64 {
	return s.geometry.Coordinates
}

// VertexIndices returns the flat (a, b) edge index slice.
func (s *State) VertexIndices() []int {
	return s.geometry.Edges
}

// VertexCount returns the number of loaded vertices.
func (s *State) VertexCount() int {
	return s.geometry.VertexCount()
}

// EdgeCount returns the number of loaded edges.
func (s *State) EdgeCount() int {
	return s.geometry.EdgeCount()
}

// Transform applies one affine operation to the geometry and records it as
// the active transformation, replacing the previous selection wholesale.
// Unknown kinds and an empty buffer leave the geometry untouched.
func (s *State) Transform(kind geometry.Kind, value float64, axis geometry.Axis) {
	s.active = geometry.Transform{Kind: kind, Value: value, Axis: axis}
	s.active.Apply(&s.geometry)

	logger.Debug("transform applied",
		zap.Stringer("kind", kind),
		zap.Float64("value", value),
		zap.Stringer("axis", axis),
	)
}

// ActiveTransform returns the last transformation selected via Transform.
func (s *State) ActiveTransform() geometry.Transform {
	return s.active
}
