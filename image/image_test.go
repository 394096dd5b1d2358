package image

import "testing"

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, c int
		err     error
	}{
		{"ZeroWidth", 0, 1, 1, ErrInvalidDimensions},
		{"ZeroHeight", 1, 0, 1, ErrInvalidDimensions},
		{"TooFewComponents", 1, 1, 0, ErrInvalidComponents},
		{"TooManyComponents", 1, 1, 5, ErrInvalidComponents},
		{"DimensionsTooLarge", 1 << 20, 1 << 20, 4, ErrDimensionsTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.w, tc.h, tc.c); err != tc.err {
				t.Errorf("New(%d,%d,%d) error = %v; want %v", tc.w, tc.h, tc.c, err, tc.err)
			}
		})
	}
}

func TestFromBytes_BufferSize(t *testing.T) {
	if _, err := FromBytes(2, 2, 3, make([]byte, 10)); err != ErrBufferSize {
		t.Errorf("FromBytes error = %v; want ErrBufferSize", err)
	}
	im, err := FromBytes(2, 2, 3, make([]byte, 12))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if im.Width() != 2 || im.Height() != 2 || im.Components() != 3 {
		t.Errorf("FromBytes dims = %dx%dx%d", im.Width(), im.Height(), im.Components())
	}
}

func TestClone_Independence(t *testing.T) {
	a := mustNew(t, 2, 2, 1)
	a.SetPixel(0, 0, []byte{9})
	b := a.Clone()
	b.SetPixel(0, 0, []byte{1})
	if a.Pixel(0, 0)[0] != 9 {
		t.Errorf("Clone shares storage with source")
	}
}

func TestSetPixel_OutOfBounds(t *testing.T) {
	a := mustNew(t, 2, 2, 1)
	// Should not panic.
	a.SetPixel(5, 5, []byte{1})
	if a.Pixel(5, 5) != nil {
		t.Errorf("Pixel out of bounds should return nil")
	}
}
