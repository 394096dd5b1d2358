package image

import "errors"

// Sentinel errors for image construction and transforms.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("image: width and height must be >= 1")

	// ErrInvalidComponents indicates a component count outside 1..4.
	ErrInvalidComponents = errors.New("image: component count must be in 1..4")

	// ErrBufferSize indicates a byte slice whose length does not match
	// width*height*components.
	ErrBufferSize = errors.New("image: buffer length does not match width*height*components")

	// ErrOutOfBounds indicates a sub-rectangle or pixel access outside the
	// image's dimensions.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrDimensionsTooLarge indicates the requested width*height*components
	// would allocate an unreasonably large pixel buffer; New rejects it
	// before calling make.
	ErrDimensionsTooLarge = errors.New("image: width*height*components exceeds maximum allowed buffer size")
)
