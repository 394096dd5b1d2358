package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	wfcimage "github.com/krychu/wfc/image"
)

// tgaHeader is the 18-byte uncompressed-truecolor TGA header this package
// reads and writes. No other TGA image type (color-mapped, RLE-compressed,
// grayscale) is supported; neither the standard library nor x/image ships a
// TGA codec, so this is a minimal reader/writer for exactly the
// uncompressed 24/32-bit subset the tool needs.
type tgaHeader struct {
	idLength        uint8
	colorMapType    uint8
	imageType       uint8
	colorMapOrigin  uint16
	colorMapLength  uint16
	colorMapDepth   uint8
	xOrigin         uint16
	yOrigin         uint16
	width           uint16
	height          uint16
	bitsPerPixel    uint8
	imageDescriptor uint8
}

const (
	tgaImageTypeTrueColor = 2
	tgaTopLeftOrigin      = 0x20
)

func decodeTGA(r io.Reader) (*wfcimage.Image, error) {
	br := bufio.NewReader(r)
	var h tgaHeader
	buf := make([]byte, 18)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("imageio: read tga header: %w", err)
	}
	h.idLength = buf[0]
	h.colorMapType = buf[1]
	h.imageType = buf[2]
	h.colorMapOrigin = binary.LittleEndian.Uint16(buf[3:5])
	h.colorMapLength = binary.LittleEndian.Uint16(buf[5:7])
	h.colorMapDepth = buf[7]
	h.xOrigin = binary.LittleEndian.Uint16(buf[8:10])
	h.yOrigin = binary.LittleEndian.Uint16(buf[10:12])
	h.width = binary.LittleEndian.Uint16(buf[12:14])
	h.height = binary.LittleEndian.Uint16(buf[14:16])
	h.bitsPerPixel = buf[16]
	h.imageDescriptor = buf[17]

	if h.imageType != tgaImageTypeTrueColor {
		return nil, fmt.Errorf("imageio: tga image type %d not supported (only uncompressed truecolor)", h.imageType)
	}
	if h.bitsPerPixel != 24 && h.bitsPerPixel != 32 {
		return nil, fmt.Errorf("imageio: tga bit depth %d not supported (only 24 or 32)", h.bitsPerPixel)
	}
	if h.idLength > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(h.idLength)); err != nil {
			return nil, fmt.Errorf("imageio: skip tga image ID field: %w", err)
		}
	}

	components := 3
	if h.bitsPerPixel == 32 {
		components = 4
	}
	w, hh := int(h.width), int(h.height)
	out, err := wfcimage.New(w, hh, components)
	if err != nil {
		return nil, err
	}

	topDown := h.imageDescriptor&tgaTopLeftOrigin != 0
	row := make([]byte, w*components)
	for y := 0; y < hh; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("imageio: read tga row %d: %w", y, err)
		}
		dstY := y
		if !topDown {
			dstY = hh - 1 - y
		}
		for x := 0; x < w; x++ {
			off := x * components
			px := make([]byte, components)
			// TGA stores pixels as BGR(A); convert to our RGB(A) order.
			px[0], px[1], px[2] = row[off+2], row[off+1], row[off]
			if components == 4 {
				px[3] = row[off+3]
			}
			out.SetPixel(x, dstY, px)
		}
	}
	return out, nil
}

func encodeTGA(w io.Writer, im *wfcimage.Image) error {
	components := im.Components()
	if components != 3 && components != 4 {
		return ErrUnsupportedComponents
	}
	bpp := uint8(24)
	if components == 4 {
		bpp = 32
	}

	header := make([]byte, 18)
	header[2] = tgaImageTypeTrueColor
	binary.LittleEndian.PutUint16(header[12:14], uint16(im.Width()))
	binary.LittleEndian.PutUint16(header[14:16], uint16(im.Height()))
	header[16] = bpp
	header[17] = tgaTopLeftOrigin

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("imageio: write tga header: %w", err)
	}

	row := make([]byte, im.Width()*components)
	for y := 0; y < im.Height(); y++ {
		for x := 0; x < im.Width(); x++ {
			px := im.Pixel(x, y)
			off := x * components
			row[off], row[off+1], row[off+2] = px[2], px[1], px[0]
			if components == 4 {
				row[off+3] = px[3]
			}
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("imageio: write tga row %d: %w", y, err)
		}
	}
	return bw.Flush()
}
