package image

// FlipH returns a new image mirrored left-to-right: the pixel at (x,y)
// equals a.Pixel(W-1-x, y). a is unchanged.
// Complexity: O(W*H*C).
func FlipH(a *Image) *Image {
	out, _ := New(a.width, a.height, a.components)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			out.SetPixel(x, y, a.Pixel(a.width-1-x, y))
		}
	}
	return out
}

// FlipV returns a new image mirrored top-to-bottom: the pixel at (x,y)
// equals a.Pixel(x, H-1-y). a is unchanged.
// Complexity: O(W*H*C).
func FlipV(a *Image) *Image {
	out, _ := New(a.width, a.height, a.components)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			out.SetPixel(x, y, a.Pixel(x, a.height-1-y))
		}
	}
	return out
}

// Rotate90 rotates a clockwise by k*90 degrees, for k in {1,2,3}. For odd k
// the result is H×W; for even k it is W×H. a is unchanged. k is taken
// modulo 4, so any k with k%4==0 yields a plain copy and, e.g., k==5
// rotates like k==1.
// Complexity: O(W*H*C).
func Rotate90(a *Image, k int) *Image {
	k = ((k % 4) + 4) % 4
	switch k {
	case 0:
		return a.Clone()
	case 2:
		out, _ := New(a.width, a.height, a.components)
		for y := 0; y < a.height; y++ {
			for x := 0; x < a.width; x++ {
				out.SetPixel(x, y, a.Pixel(a.width-1-x, a.height-1-y))
			}
		}
		return out
	case 1:
		// destination is H x W; dst(x', y') = src(y', H-1-x')
		out, _ := New(a.height, a.width, a.components)
		for yp := 0; yp < out.height; yp++ {
			for xp := 0; xp < out.width; xp++ {
				out.SetPixel(xp, yp, a.Pixel(yp, a.height-1-xp))
			}
		}
		return out
	default: // k == 3
		// destination is H x W; dst(x', y') = src(W-1-y', x')
		out, _ := New(a.height, a.width, a.components)
		for yp := 0; yp < out.height; yp++ {
			for xp := 0; xp < out.width; xp++ {
				out.SetPixel(xp, yp, a.Pixel(a.width-1-yp, xp))
			}
		}
		return out
	}
}

// Expand returns a (W+dx)x(H+dy) image whose pixel at (x,y) equals
// a.Pixel(x mod W, y mod H), making a toroidal so that tiles cut from it
// may span the seam. dx and dy must be >= 0; a is unchanged.
// Complexity: O((W+dx)*(H+dy)*C).
func Expand(a *Image, dx, dy int) *Image {
	if dx < 0 {
		dx = 0
	}
	if dy < 0 {
		dy = 0
	}
	out, _ := New(a.width+dx, a.height+dy, a.components)
	for y := 0; y < out.height; y++ {
		sy := y % a.height
		for x := 0; x < out.width; x++ {
			sx := x % a.width
			out.SetPixel(x, y, a.Pixel(sx, sy))
		}
	}
	return out
}

// Subrect extracts the w x h rectangle of a with top-left corner (x,y).
// Returns ErrOutOfBounds if x+w > a.Width() or y+h > a.Height().
// Complexity: O(w*h*C).
func Subrect(a *Image, x, y, w, h int) (*Image, error) {
	if x < 0 || y < 0 || w < 1 || h < 1 || x+w > a.width || y+h > a.height {
		return nil, ErrOutOfBounds
	}
	out, err := New(w, h, a.components)
	if err != nil {
		return nil, err
	}
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			out.SetPixel(xx, yy, a.Pixel(x+xx, y+yy))
		}
	}
	return out, nil
}

// Equals reports whether a and b have identical dimensions, component
// count, and bytes.
// Complexity: O(W*H*C).
func Equals(a, b *Image) bool {
	if a.width != b.width || a.height != b.height || a.components != b.components {
		return false
	}
	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}
