// Package testutils provides shared test fixtures and infrastructure.
package testutils

// Minimal valid image files, just enough header for format sniffing.
// Each decodes to a 1x1 image with image.DecodeConfig.

// TinyPNG returns a minimal PNG: signature plus a valid IHDR chunk
// (1x1, 8-bit RGBA) with its correct CRC.
func TinyPNG() []byte {
	return []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // signature
		0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R', // IHDR length + type
		0x00, 0x00, 0x00, 0x01, // width 1
		0x00, 0x00, 0x00, 0x01, // height 1
		0x08, 0x06, 0x00, 0x00, 0x00, // bit depth 8, RGBA
		0x1F, 0x15, 0xC4, 0x89, // CRC
	}
}

// TinyGIF returns a minimal GIF89a header with a 1x1 logical screen.
func TinyGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, // width 1
		0x01, 0x00, // height 1
		0x00, // no global color table
		0x00, // background color
		0x00, // aspect ratio
	}
}

// TinyJPEG returns a minimal JPEG: SOI followed by a 1x1 SOF0 frame header
// and an SOS marker, which DecodeConfig reads up to before returning.
func TinyJPEG() []byte {
	return []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xC0, 0x00, 0x11, // SOF0, length 17
		0x08,       // precision
		0x00, 0x01, // height 1
		0x00, 0x01, // width 1
		0x03,             // 3 components
		0x01, 0x22, 0x00, // Y
		0x02, 0x11, 0x01, // Cb
		0x03, 0x11, 0x01, // Cr
		0xFF, 0xDA, 0x00, 0x02, // SOS, empty segment
	}
}

// TinyWebP returns a minimal lossless WebP (VP8L) with 1x1 dimensions.
func TinyWebP() []byte {
	return []byte{
		'R', 'I', 'F', 'F',
		0x12, 0x00, 0x00, 0x00, // RIFF size 18
		'W', 'E', 'B', 'P',
		'V', 'P', '8', 'L',
		0x05, 0x00, 0x00, 0x00, // chunk size 5
		0x2F,                   // VP8L signature
		0x00, 0x00, 0x00, 0x00, // width-1=0, height-1=0, no alpha, version 0
		0x00, // pad to even chunk size
	}
}

// HTMLBody returns bytes that download fine but are not an image, like an
// error page served with a 200 status.
func HTMLBody() []byte {
	return []byte("<!DOCTYPE html><html><body><h1>Not Found</h1></body></html>")
}
