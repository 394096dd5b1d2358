package image

import "testing"

func mustNew(t *testing.T, w, h, c int) *Image {
	t.Helper()
	im, err := New(w, h, c)
	if err != nil {
		t.Fatalf("New(%d,%d,%d): %v", w, h, c, err)
	}
	return im
}

// TestFlipH_RGB flips a three-pixel RGB row:
// [[255,0,0],[0,255,0],[0,0,255]] becomes [[0,0,255],[0,255,0],[255,0,0]].
func TestFlipH_RGB(t *testing.T) {
	a := mustNew(t, 3, 1, 3)
	a.SetPixel(0, 0, []byte{255, 0, 0})
	a.SetPixel(1, 0, []byte{0, 255, 0})
	a.SetPixel(2, 0, []byte{0, 0, 255})

	out := FlipH(a)

	want := [][]byte{{0, 0, 255}, {0, 255, 0}, {255, 0, 0}}
	for x, w := range want {
		if got := out.Pixel(x, 0); !pixelEquals(got, w, 3) {
			t.Errorf("FlipH pixel %d = %v; want %v", x, got, w)
		}
	}
}

func TestFlipV_Involution(t *testing.T) {
	a := mustNew(t, 2, 3, 1)
	for i := range a.Bytes() {
		a.Bytes()[i] = byte(i + 1)
	}
	if !Equals(FlipV(FlipV(a)), a) {
		t.Errorf("FlipV(FlipV(a)) != a")
	}
	if !Equals(FlipH(FlipH(a)), a) {
		t.Errorf("FlipH(FlipH(a)) != a")
	}
}

// TestRotate90_Grayscale: rotate90([[1,2],[3,4]], 1) == [[3,1],[4,2]].
func TestRotate90_Grayscale(t *testing.T) {
	a := mustNew(t, 2, 2, 1)
	a.SetPixel(0, 0, []byte{1})
	a.SetPixel(1, 0, []byte{2})
	a.SetPixel(0, 1, []byte{3})
	a.SetPixel(1, 1, []byte{4})

	out := Rotate90(a, 1)
	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	expect := []byte{3, 1, 4, 2}
	for i, xy := range want {
		if got := out.Pixel(xy[0], xy[1])[0]; got != expect[i] {
			t.Errorf("Rotate90 pixel (%d,%d) = %d; want %d", xy[0], xy[1], got, expect[i])
		}
	}
}

func TestRotate90_RoundTrip(t *testing.T) {
	a := mustNew(t, 4, 3, 2)
	for i := range a.Bytes() {
		a.Bytes()[i] = byte(i * 7)
	}
	if !Equals(Rotate90(a, 4), a) {
		t.Errorf("Rotate90(a,4) != a")
	}
	// Four quarter turns should compose to the same as one full turn.
	four := Rotate90(Rotate90(Rotate90(Rotate90(a, 1), 1), 1), 1)
	if !Equals(four, a) {
		t.Errorf("four quarter-turns != identity")
	}
}

// TestExpand_Coherence: Expand by (1,1) of [[1,2],[3,4]] -> 3x3
// [[1,2,1],[3,4,3],[1,2,1]].
func TestExpand_Coherence(t *testing.T) {
	a := mustNew(t, 2, 2, 1)
	a.SetPixel(0, 0, []byte{1})
	a.SetPixel(1, 0, []byte{2})
	a.SetPixel(0, 1, []byte{3})
	a.SetPixel(1, 1, []byte{4})

	out := Expand(a, 1, 1)
	if out.Width() != 3 || out.Height() != 3 {
		t.Fatalf("Expand dims = %dx%d; want 3x3", out.Width(), out.Height())
	}
	want := [][]byte{
		{1, 2, 1},
		{3, 4, 3},
		{1, 2, 1},
	}
	for y, row := range want {
		for x, v := range row {
			if got := out.Pixel(x, y)[0]; got != v {
				t.Errorf("Expand pixel (%d,%d) = %d; want %d", x, y, got, v)
			}
		}
	}
}

func TestExpand_ModularCoherence(t *testing.T) {
	a := mustNew(t, 3, 4, 1)
	for i := range a.Bytes() {
		a.Bytes()[i] = byte(i + 1)
	}
	out := Expand(a, 2, 3)
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			got := out.Pixel(x, y)[0]
			want := a.Pixel(x%a.Width(), y%a.Height())[0]
			if got != want {
				t.Errorf("Expand pixel (%d,%d) = %d; want %d", x, y, got, want)
			}
		}
	}
}

// TestOverlapEquals_Right checks a 3x3 grayscale pair whose shared strip
// matches RIGHT-ward but not LEFT-ward.
func TestOverlapEquals_Right(t *testing.T) {
	a := mustNew(t, 3, 3, 1)
	b := mustNew(t, 3, 3, 1)
	aVals := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	bVals := []byte{2, 3, 10, 5, 6, 11, 8, 9, 12}
	copy(a.Bytes(), aVals)
	copy(b.Bytes(), bVals)

	if !OverlapEquals(a, b, RIGHT) {
		t.Errorf("OverlapEquals(a,b,RIGHT) = false; want true")
	}
	if OverlapEquals(a, b, LEFT) {
		t.Errorf("OverlapEquals(a,b,LEFT) = true; want false")
	}
}

func TestSubrect_OutOfBounds(t *testing.T) {
	a := mustNew(t, 4, 4, 1)
	if _, err := Subrect(a, 2, 2, 3, 3); err != ErrOutOfBounds {
		t.Errorf("Subrect out of bounds: err = %v; want ErrOutOfBounds", err)
	}
	sub, err := Subrect(a, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("Subrect: %v", err)
	}
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Errorf("Subrect dims = %dx%d; want 2x2", sub.Width(), sub.Height())
	}
}
