package predict

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

// fixedRand always picks the first element and returns f from Float64.
type fixedRand struct{ f float64 }

func (fixedRand) Intn(n int) int     { return 0 }
func (r fixedRand) Float64() float64 { return r.f }

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func squareImage(side, off, size int) *image.NRGBA {
	img := solidImage(side, side, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	for y := off; y < off+size; y++ {
		for x := off; x < off+size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 230, B: 230, A: 255})
		}
	}
	return img
}

func decoded(t *testing.T, img image.Image) *imageproc.DecodedImage {
	t.Helper()
	d, err := imageproc.NewDecodedImage(img)
	require.NoError(t, err)
	return d
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURI(t *testing.T, img image.Image) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, img))
}
