package imageio

import (
	"fmt"
	goimage "image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	wfcimage "github.com/krychu/wfc/image"
)

// Load reads the image file at path, decoding it according to its lowercased
// extension. Returns ErrUnknownFormat for anything other than .png, .bmp,
// .tga, .jpg, or .jpeg.
func Load(path string) (*wfcimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	switch ext(path) {
	case ".png":
		im, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("imageio: decode png: %w", err)
		}
		return fromStd(im), nil
	case ".jpg", ".jpeg":
		im, err := jpeg.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("imageio: decode jpeg: %w", err)
		}
		return fromStd(im), nil
	case ".bmp":
		im, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("imageio: decode bmp: %w", err)
		}
		return fromStd(im), nil
	case ".tga":
		return decodeTGA(f)
	default:
		return nil, ErrUnknownFormat
	}
}

// Save writes im to path, encoding it according to path's lowercased
// extension. Returns ErrUnknownFormat for anything other than .png, .bmp,
// .tga, .jpg, or .jpeg.
func Save(im *wfcimage.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext(path) {
	case ".png":
		return png.Encode(f, toStd(im))
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, toStd(im), &jpeg.Options{Quality: jpeg.DefaultQuality})
	case ".bmp":
		return bmp.Encode(f, toStd(im))
	case ".tga":
		return encodeTGA(f, im)
	default:
		return ErrUnknownFormat
	}
}

// ext returns path's file extension, lowercased, so that format dispatch
// is case-insensitive.
func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// fromStd converts a decoded standard-library image into our Image type.
// Gray and Gray16 sources become single-component images; everything else
// becomes 4-component RGBA, with alpha fixed at 255 for formats (JPEG, most
// BMP) that carry none.
func fromStd(im goimage.Image) *wfcimage.Image {
	b := im.Bounds()
	w, h := b.Dx(), b.Dy()

	if isGray(im) {
		out, _ := wfcimage.New(w, h, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g := color.GrayModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				out.SetPixel(x, y, []byte{g.Y})
			}
		}
		return out
	}

	// Convert through NRGBAModel, not RGBA(): the latter premultiplies by
	// alpha, which would corrupt translucent pixels on a load/save round trip.
	out, _ := wfcimage.New(w, h, 4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.SetPixel(x, y, []byte{c.R, c.G, c.B, c.A})
		}
	}
	return out
}

func isGray(im goimage.Image) bool {
	switch im.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	default:
		return false
	}
}

// toStd converts im into a concrete standard-library image so the stdlib
// and golang.org/x/image encoders take their exact-match fast paths — PNG
// in particular only writes a grayscale file for an *image.Gray value, and
// only preserves straight (non-premultiplied) alpha for an *image.NRGBA.
// 1- and 2-component images encode as grayscale from the first channel;
// 3-component images get an opaque alpha channel.
func toStd(im *wfcimage.Image) goimage.Image {
	w, h := im.Width(), im.Height()
	if im.Components() <= 2 {
		out := goimage.NewGray(goimage.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray(x, y, color.Gray{Y: im.Pixel(x, y)[0]})
			}
		}
		return out
	}
	out := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := im.Pixel(x, y)
			a := byte(255)
			if im.Components() == 4 {
				a = px[3]
			}
			out.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: a})
		}
	}
	return out
}
