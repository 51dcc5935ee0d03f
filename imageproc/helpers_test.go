package imageproc

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// squareImage draws a filled square of side size at (off, off) on a black canvas.
func squareImage(side, off, size int) *image.NRGBA {
	img := solidImage(side, side, color.NRGBA{A: 255})
	for y := off; y < off+size; y++ {
		for x := off; x < off+size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// withDimensions rewrites the IHDR chunk of a PNG so it declares w x h pixels.
// The pixel data is left alone, so only the header is trustworthy.
func withDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	require.Equal(t, "IHDR", string(data[12:16]))
	out := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func dataURI(t *testing.T, img image.Image) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, img))
}

func mustDecode(t *testing.T, img image.Image) *DecodedImage {
	t.Helper()
	d, err := NewDecodedImage(img)
	require.NoError(t, err)
	return d
}

// mask builds a w x h edge map from rows of '#' and '.'.
func mask(rows ...string) ([]bool, int, int) {
	h := len(rows)
	w := len(rows[0])
	m := make([]bool, w*h)
	for y, row := range rows {
		for x, c := range row {
			m[y*w+x] = c == '#'
		}
	}
	return m, w, h
}
