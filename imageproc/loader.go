package imageproc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultFetchTimeout bounds a remote image fetch.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultMaxImageSize is the default maximum image size (10 MiB).
	DefaultMaxImageSize = 10 * 1024 * 1024
	// DefaultMaxImagePixels caps width*height before anything is decoded.
	DefaultMaxImagePixels = 25_000_000
)

// ErrUndecodable is wrapped by every loader failure. It is a normal outcome:
// callers route it to the keyword fallback classifier.
var ErrUndecodable = errors.New("image undecodable")

type ReferenceKind int

const (
	EmbeddedReference ReferenceKind = iota
	RemoteReference
	LocalReference
)

func (k ReferenceKind) String() string {
	switch k {
	case EmbeddedReference:
		return "embedded"
	case RemoteReference:
		return "remote"
	case LocalReference:
		return "local"
	default:
		return "unknown"
	}
}

// ImageReference points at an image: a data URI, a remote URL, a local path,
// or bytes received as an upload.
type ImageReference struct {
	Kind ReferenceKind
	// Raw is the reference string. Keyword-based classifiers read it as evidence.
	Raw  string
	data []byte
}

// ParseReference classifies a reference string the way clients send it in
// the image_url field.
func ParseReference(raw string) ImageReference {
	switch {
	case strings.HasPrefix(raw, "data:image"):
		return ImageReference{Kind: EmbeddedReference, Raw: raw}
	case strings.HasPrefix(raw, "http"):
		return ImageReference{Kind: RemoteReference, Raw: raw}
	default:
		return ImageReference{Kind: LocalReference, Raw: raw}
	}
}

// UploadReference wraps uploaded bytes. The file name stands in as the
// reference string.
func UploadReference(filename string, data []byte) ImageReference {
	return ImageReference{Kind: EmbeddedReference, Raw: filename, data: data}
}

func (r ImageReference) String() string { return r.Raw }

// Loader turns an ImageReference into a DecodedImage.
type Loader struct {
	client    *resty.Client
	maxSize   int64
	maxPixels int64
}

// NewLoader creates a Loader with the default fetch timeout and size limit.
func NewLoader() *Loader {
	return &Loader{
		client:    resty.New().SetTimeout(DefaultFetchTimeout),
		maxSize:   DefaultMaxImageSize,
		maxPixels: DefaultMaxImagePixels,
	}
}

// WithTimeout sets a custom timeout for remote fetches.
func (l *Loader) WithTimeout(timeout time.Duration) *Loader {
	l.client.SetTimeout(timeout)
	return l
}

// WithMaxSize sets a custom maximum image size in bytes.
func (l *Loader) WithMaxSize(maxSize int64) *Loader {
	if maxSize > 0 {
		l.maxSize = maxSize
	}
	return l
}

// WithMaxPixels sets the largest pixel count (width*height) that is decoded.
func (l *Loader) WithMaxPixels(maxPixels int64) *Loader {
	if maxPixels > 0 {
		l.maxPixels = maxPixels
	}
	return l
}

// Load decodes the referenced image. Every error wraps ErrUndecodable; there
// are no retries.
func (l *Loader) Load(ctx context.Context, ref ImageReference) (*DecodedImage, error) {
	img, err := l.load(ctx, ref)
	if err != nil {
		log.WithField("kind", ref.Kind.String()).Error("[Loader] Couldn't load image: ", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return img, nil
}

func (l *Loader) load(ctx context.Context, ref ImageReference) (*DecodedImage, error) {
	var data []byte
	var err error

	switch {
	case ref.data != nil:
		data = ref.data
	case ref.Kind == EmbeddedReference:
		data, err = decodeDataURI(ref.Raw)
	case ref.Kind == RemoteReference:
		data, err = l.fetch(ctx, ref.Raw)
	default:
		data, err = l.readFile(ref.Raw)
	}
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("image too large: exceeds limit of %d bytes", l.maxSize)
	}
	// Only the header is read here; a small file can still declare huge dimensions.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > l.maxPixels {
		return nil, fmt.Errorf("image has too many pixels: %dx%d exceeds limit of %d", cfg.Width, cfg.Height, l.maxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return NewDecodedImage(img)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	if info.Size() > l.maxSize {
		return nil, fmt.Errorf("image too large: exceeds limit of %d bytes", l.maxSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("download failed: status %d", resp.StatusCode())
	}

	// Read one byte past the limit to detect oversized bodies.
	data, err := io.ReadAll(io.LimitReader(body, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// decodeDataURI strips everything up to the first comma and base64-decodes the rest.
func decodeDataURI(raw string) ([]byte, error) {
	idx := strings.IndexByte(raw, ',')
	if idx < 0 {
		return nil, errors.New("data URI has no payload")
	}
	payload := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw[idx+1:])

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, nil
}
