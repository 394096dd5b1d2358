package image

// Image is an owned, tightly packed pixel buffer: width W, height H, a
// component count C in 1..4, and a row-major, component-interleaved byte
// slice of length W*H*C. The pixel at (x,y) begins at offset (y*W+x)*C.
//
// Image is not safe for concurrent mutation; callers that need to share an
// Image across goroutines must treat it as read-only or synchronize
// externally.
type Image struct {
	width      int
	height     int
	components int
	data       []byte
}

// maxBufferBytes bounds width*height*components before it is used to size
// the pixel buffer, rejecting absurd dimensions instead of attempting a
// huge allocation.
const maxBufferBytes = 1 << 30

// New allocates a zero-filled Image of the given dimensions and component
// count. Returns ErrInvalidDimensions if w or h is < 1, ErrInvalidComponents
// if c is outside 1..4, or ErrDimensionsTooLarge if w*h*c exceeds
// maxBufferBytes.
func New(w, h, c int) (*Image, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}
	if c < 1 || c > 4 {
		return nil, ErrInvalidComponents
	}
	if w > maxBufferBytes/c/h {
		return nil, ErrDimensionsTooLarge
	}
	return &Image{
		width:      w,
		height:     h,
		components: c,
		data:       make([]byte, w*h*c),
	}, nil
}

// FromBytes wraps an existing byte slice as an Image without copying.
// Returns ErrBufferSize if len(data) != w*h*c. Ownership of data passes to
// the returned Image; callers must not mutate data afterwards through the
// original slice.
func FromBytes(w, h, c int, data []byte) (*Image, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}
	if c < 1 || c > 4 {
		return nil, ErrInvalidComponents
	}
	if len(data) != w*h*c {
		return nil, ErrBufferSize
	}
	return &Image{width: w, height: h, components: c, data: data}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Components returns the number of bytes per pixel (1..4).
func (im *Image) Components() int { return im.components }

// Bytes returns the underlying row-major, component-interleaved buffer.
// Callers must not retain a mutated slice beyond the Image's lifetime
// expectations; this is a borrow, not a copy.
func (im *Image) Bytes() []byte { return im.data }

// index returns the byte offset of the pixel at (x,y).
// Complexity: O(1).
func (im *Image) index(x, y int) int {
	return (y*im.width + x) * im.components
}

// InBounds reports whether (x,y) lies within the image.
// Complexity: O(1).
func (im *Image) InBounds(x, y int) bool {
	return x >= 0 && x < im.width && y >= 0 && y < im.height
}

// Pixel returns a slice view of the Components() bytes at (x,y). The slice
// aliases the image's backing array; mutating it mutates the image.
// Out-of-bounds coordinates are a programmer error and return nil.
func (im *Image) Pixel(x, y int) []byte {
	if !im.InBounds(x, y) {
		return nil
	}
	off := im.index(x, y)
	return im.data[off : off+im.components]
}

// SetPixel overwrites the Components() bytes at (x,y) with px. If px is
// shorter than Components(), only the overlapping prefix is written.
// Out-of-bounds coordinates are a silent no-op (programmer error).
func (im *Image) SetPixel(x, y int, px []byte) {
	if !im.InBounds(x, y) {
		return
	}
	off := im.index(x, y)
	n := im.components
	if len(px) < n {
		n = len(px)
	}
	copy(im.data[off:off+n], px[:n])
}

// Clone returns a deep copy of im; the two images share no storage.
// Complexity: O(W*H*C).
func (im *Image) Clone() *Image {
	out := &Image{
		width:      im.width,
		height:     im.height,
		components: im.components,
		data:       make([]byte, len(im.data)),
	}
	copy(out.data, im.data)
	return out
}

// Copy returns a deep copy of a. It is the pure-function counterpart of
// (*Image).Clone, named to mirror the other transforms' copy(a) naming.
func Copy(a *Image) *Image {
	return a.Clone()
}
