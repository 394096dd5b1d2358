package imageio

import "errors"

// ErrUnknownFormat indicates a file extension not in {.png, .bmp, .tga,
// .jpg, .jpeg}.
var ErrUnknownFormat = errors.New("imageio: unrecognized image file extension")

// ErrUnsupportedComponents indicates an image.Image whose component count
// cannot be represented by the target format (the hand-rolled TGA writer
// only supports 3 or 4 components).
var ErrUnsupportedComponents = errors.New("imageio: component count unsupported by this format")
