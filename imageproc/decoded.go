package imageproc

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/disintegration/imaging"
)

// Canny thresholds shared by the analyzer, the shape extractor and the
// condition detector.
const (
	cannyLow  = 50
	cannyHigh = 150
)

// DecodedImage is a width x height grid of RGB pixels. The alpha channel of
// the source image is ignored.
//
// Derived planes (grayscale, edge map) are computed once and shared, so a
// DecodedImage may be read from several goroutines.
type DecodedImage struct {
	img *image.NRGBA

	grayOnce sync.Once
	gray     []uint8

	edgesOnce sync.Once
	edges     []bool
}

// NewDecodedImage converts img to an NRGBA pixel grid anchored at (0,0).
func NewDecodedImage(img image.Image) (*DecodedImage, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrUndecodable)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrUndecodable, b.Dx(), b.Dy())
	}
	return &DecodedImage{img: imaging.Clone(img)}, nil
}

func (d *DecodedImage) Width() int  { return d.img.Rect.Dx() }
func (d *DecodedImage) Height() int { return d.img.Rect.Dy() }

// NRGBA returns the underlying pixel grid. Callers must not modify it.
func (d *DecodedImage) NRGBA() *image.NRGBA { return d.img }

// Gray returns the luma plane (0.299R + 0.587G + 0.114B), row-major.
func (d *DecodedImage) Gray() []uint8 {
	d.grayOnce.Do(func() {
		g := imaging.Grayscale(d.img)
		w, h := d.Width(), d.Height()
		d.gray = make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := g.Pix[y*g.Stride:]
			for x := 0; x < w; x++ {
				d.gray[y*w+x] = row[x*4]
			}
		}
	})
	return d.gray
}

// Edges returns the Canny(50, 150) edge map, row-major.
func (d *DecodedImage) Edges() []bool {
	d.edgesOnce.Do(func() {
		d.edges = canny(d.Gray(), d.Width(), d.Height(), cannyLow, cannyHigh)
	})
	return d.edges
}

// EdgeDensity is the fraction of pixels marked as edges.
func (d *DecodedImage) EdgeDensity() float64 {
	n := 0
	for _, e := range d.Edges() {
		if e {
			n++
		}
	}
	return float64(n) / float64(d.Width()*d.Height())
}

// ChannelStats returns the mean and the population standard deviation of
// every R, G and B value of the image.
func (d *DecodedImage) ChannelStats() (mean, std float64) {
	w, h := d.Width(), d.Height()
	var sum, sumSq float64
	for y := 0; y < h; y++ {
		row := d.img.Pix[y*d.img.Stride:]
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				v := float64(row[x*4+c])
				sum += v
				sumSq += v * v
			}
		}
	}
	n := float64(w * h * 3)
	mean = sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// LaplacianVariance is the variance of the 4-neighbour Laplacian response of
// the luma plane. Higher means sharper.
func (d *DecodedImage) LaplacianVariance() float64 {
	return laplacianVariance(d.Gray(), d.Width(), d.Height())
}

// BrownFraction is the fraction of pixels inside the brown/discoloration HSV
// band H 10-20, S 50-255, V 20-200 (8-bit OpenCV encoding).
func (d *DecodedImage) BrownFraction() float64 {
	w, h := d.Width(), d.Height()
	n := 0
	for y := 0; y < h; y++ {
		row := d.img.Pix[y*d.img.Stride:]
		for x := 0; x < w; x++ {
			hue, sat, val := hsv8(row[x*4], row[x*4+1], row[x*4+2])
			if hue >= 10 && hue <= 20 && sat >= 50 && val >= 20 && val <= 200 {
				n++
			}
		}
	}
	return float64(n) / float64(w*h)
}
