package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when a payload cannot be decoded as any
// registered image format.
var ErrUnknownFormat = errors.New("imaging: unknown or invalid image format")

// Format describes a sniffed image payload.
type Format struct {
	// Name is the decoder-reported format name, e.g. "jpeg".
	Name string

	// Extension is the canonical file extension without a dot, e.g. "jpg".
	Extension string

	// MIME is the content type to store with the object, e.g. "image/jpeg".
	MIME string
}

// extensionOverrides maps format names whose canonical extension differs
// from the name itself. Everything else passes through unchanged.
var extensionOverrides = map[string]string{
	"jpeg": "jpg",
}

// Sniff determines the true format of an image payload from its bytes.
// It returns ErrUnknownFormat (wrapped) when the payload is not a
// recognized image, including truncated or corrupt headers.
func Sniff(data []byte) (Format, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if name == "" {
		return Format{}, ErrUnknownFormat
	}

	ext := name
	if override, ok := extensionOverrides[name]; ok {
		ext = override
	}

	return Format{
		Name:      name,
		Extension: ext,
		MIME:      "image/" + name,
	}, nil
}
