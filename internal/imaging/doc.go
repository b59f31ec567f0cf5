// Package imaging identifies image payloads by inspecting their bytes.
//
// Downloaded bytes are sniffed with image.DecodeConfig rather than trusting
// the URL suffix or the server-declared Content-Type. A payload that cannot
// be decoded as a known image format is rejected; this keeps HTML error
// pages served with a 200 status out of the destination bucket.
//
// # Supported formats
//
//   - jpeg (extension normalized to "jpg")
//   - png
//   - gif
//   - webp (via golang.org/x/image/webp)
//
// # Usage
//
//	format, err := imaging.Sniff(data)
//	if err != nil {
//	    // not an image
//	}
//	// format.Name, format.Extension, format.MIME
package imaging
