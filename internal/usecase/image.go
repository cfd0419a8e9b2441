package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

// Pixel colors in the space image format.
const (
	pixelBlack       = 0
	pixelWhite       = 1
	pixelTransparent = 2
)

// Image decodes the BIOS password image: a digit stream split into
// width*height layers, composited front to back (first opaque pixel wins).
type Image struct {
	source ports.InputSource
}

func NewImage(src ports.InputSource) *Image {
	return &Image{source: src}
}

// SpaceImage is a decoded layered image.
type SpaceImage struct {
	Width  int
	Height int
	Layers [][]int
}

// Execute decodes the image at path, reports the integrity checksum (ones
// times twos on the layer with fewest zeros), and renders the composite.
func (uc *Image) Execute(ctx context.Context, path string, width, height int, w io.Writer) error {
	digits, err := uc.source.Digits(path)
	if err != nil {
		return err
	}

	img, err := DecodeImage(digits, width, height)
	if err != nil {
		return &domain.OpError{Op: "image.decode", Kind: domain.KindParse, Path: path, Err: err}
	}

	fmt.Fprintf(w, "Layers: %d\n", len(img.Layers))
	fmt.Fprintf(w, "Checksum: %d\n", img.Checksum())
	fmt.Fprint(w, img.Render())
	return nil
}

// DecodeImage splits the digit stream into layers.
func DecodeImage(digits []int, width, height int) (*SpaceImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	step := width * height
	if len(digits) == 0 || len(digits)%step != 0 {
		return nil, fmt.Errorf("%d digits do not split into %dx%d layers", len(digits), width, height)
	}

	img := &SpaceImage{Width: width, Height: height}
	for i := 0; i < len(digits); i += step {
		img.Layers = append(img.Layers, digits[i:i+step])
	}
	return img, nil
}

// Checksum returns ones*twos counted on the layer with the fewest zeros.
func (img *SpaceImage) Checksum() int {
	best := 0
	bestZeros := -1
	for i, layer := range img.Layers {
		zeros := countDigit(layer, 0)
		if bestZeros < 0 || zeros < bestZeros {
			bestZeros = zeros
			best = i
		}
	}

	layer := img.Layers[best]
	return countDigit(layer, 1) * countDigit(layer, 2)
}

// Render composites the layers front to back. Black prints as 'X', white as
// '.', transparent as ' ' (the historical palette).
func (img *SpaceImage) Render() string {
	var b strings.Builder
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b.WriteByte(renderPixel(img.at(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (img *SpaceImage) at(x, y int) int {
	idx := y*img.Width + x
	for _, layer := range img.Layers {
		if p := layer[idx]; p != pixelTransparent {
			return p
		}
	}
	return pixelTransparent
}

func renderPixel(p int) byte {
	switch p {
	case pixelBlack:
		return 'X'
	case pixelWhite:
		return '.'
	default:
		return ' '
	}
}

func countDigit(layer []int, digit int) int {
	n := 0
	for _, d := range layer {
		if d == digit {
			n++
		}
	}
	return n
}
