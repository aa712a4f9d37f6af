package navfile

import "errors"

var (
	// ErrUnknownVersion indicates a graph document with an unsupported version.
	ErrUnknownVersion = errors.New("navfile: unknown document version")
	// ErrBadPenalty indicates a vertex penalty that is not a positive number.
	ErrBadPenalty = errors.New("navfile: penalty must be positive")
	// ErrNeighbourOutOfRange indicates a neighbour index ≥ the vertex count.
	ErrNeighbourOutOfRange = errors.New("navfile: neighbour index out of range")
	// ErrBadConnectivity indicates a grid document conn other than 4 or 8.
	ErrBadConnectivity = errors.New("navfile: conn must be 4 or 8")
)
