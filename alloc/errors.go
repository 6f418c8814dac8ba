package alloc

import "github.com/pkg/errors"

// ErrUnsupportedFormat is returned when a requested format/usage/compression
// combination is not present in the format table or not supported by it.
var ErrUnsupportedFormat error = errors.New("format and usage combination is not supported")

// ErrInvalidDimensions is returned when the requested width, height or layer
// count is not valid for the resolved format.
var ErrInvalidDimensions error = errors.New("requested dimensions are invalid for this format")

// ErrClassification is returned when the extended format bits cannot be
// decoded into a coherent allocation type.
var ErrClassification error = errors.New("allocation type classification failed")

// ErrNoResources is returned when the backing store cannot satisfy an
// allocation. It is distinct from ErrUnsupportedFormat so callers can retry
// under memory pressure.
var ErrNoResources error = errors.New("backing store allocation failed")

// ErrNilBuffer is returned by FreeBuffer when passed a nil handle.
var ErrNilBuffer error = errors.New("buffer handle is nil")
