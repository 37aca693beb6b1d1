// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"goplanet/filesystem"
)

// Extensions tried in order for names without one.
var Extensions = []string{".tga", ".png", ".jpg"}

// Write expects RGBA 8bit data, top row first.
func Write(name string, data []byte, width, height int) error {
	if len(data) < width*height*4 {
		return errors.Errorf("writing %s: need %d bytes of image data, got %d", name, width*height*4, len(data))
	}
	img := &image.NRGBA{
		Pix:    data,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", name)
	}
	return f.Close()
}

// Load reads the image name through the filesystem. A name without an
// extension is tried with each of Extensions.
func Load(name string) (*image.NRGBA, error) {
	if filesystem.Ext(name) != "" {
		return load(name)
	}
	for _, ext := range Extensions {
		if _, err := filesystem.Stat(name + ext); err == nil {
			i, err := load(name + ext)
			if err != nil {
				log.Printf("Failed to load %v%v, %v", name, ext, err)
			}
			return i, err
		}
	}
	return nil, errors.Errorf("image %v not found", name)
}

func load(name string) (*image.NRGBA, error) {
	f, err := filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.ToLower(filesystem.Ext(name)) == ".tga" {
		i, err := decodeTGA(f)
		return i, errors.Wrap(err, name)
	}
	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const (
	tgaRGB    = 2
	tgaRLERGB = 10
	// image descriptor bit 5: rows are stored top to bottom
	tgaTopOrigin = 0x20
)

func decodeTGA(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)
	var header tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "invalid tga header")
	}
	if header.ImageType != tgaRGB && header.ImageType != tgaRLERGB {
		return nil, errors.Errorf("tga is type %d, not 2 or 10", header.ImageType)
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, errors.Errorf("tga is not 24bit or 32bit")
	}
	if _, err := br.Discard(int(header.IDLength)); err != nil {
		return nil, errors.Wrap(err, "tga image id")
	}

	width, height := int(header.Width), int(header.Height)
	bpp := int(header.PixelSize / 8)
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))

	// pixels in file order, BGR(A)
	raw := make([]byte, width*height*bpp)
	if header.ImageType == tgaRGB {
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, errors.Wrap(err, "not enough pixels")
		}
	} else if err := readRLE(br, raw, bpp); err != nil {
		return nil, err
	}

	topDown := header.Attributes&tgaTopOrigin != 0
	for y := 0; y < height; y++ {
		row := y
		if !topDown {
			row = height - 1 - y
		}
		for x := 0; x < width; x++ {
			s := raw[(row*width+x)*bpp:]
			d := nrgba.Pix[y*nrgba.Stride+x*4:]
			d[0], d[1], d[2] = s[2], s[1], s[0]
			if bpp == 4 {
				d[3] = s[3]
			} else {
				d[3] = 255
			}
		}
	}
	return nrgba, nil
}

// readRLE fills dst from run length encoded packets. A packet header with
// the high bit set repeats the next pixel, otherwise it is followed by
// count raw pixels. Packets may cross row boundaries.
func readRLE(r *bufio.Reader, dst []byte, bpp int) error {
	pixel := make([]byte, bpp)
	for i := 0; i < len(dst); {
		h, err := r.ReadByte()
		if err != nil {
			return errors.Wrap(err, "tga rle packet")
		}
		n := int(h&0x7f+1) * bpp
		if i+n > len(dst) {
			return errors.New("tga rle packet overflows the image")
		}
		if h&0x80 != 0 {
			if _, err := io.ReadFull(r, pixel); err != nil {
				return errors.Wrap(err, "tga rle pixel")
			}
			for j := 0; j < n; j += bpp {
				copy(dst[i+j:], pixel)
			}
		} else if _, err := io.ReadFull(r, dst[i:i+n]); err != nil {
			return errors.Wrap(err, "tga raw packet")
		}
		i += n
	}
	return nil
}
