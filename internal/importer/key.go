package importer

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// fallbackBasename is used when the URL path yields no usable filename.
const fallbackBasename = "image"

// deriveKey computes the destination key for one task. The row index
// prefix keeps keys unique across rows that share a basename, and makes
// re-uploads after a resume land on the same object.
//
// The result has the form "{folder}/{index}_{basename}.{ext}" where
// basename is the final URL path element with its extension stripped.
func deriveKey(folder string, index int, rawURL, ext string) string {
	base := fallbackBasename
	if u, err := url.Parse(rawURL); err == nil {
		b := path.Base(u.Path)
		b = strings.TrimSuffix(b, path.Ext(b))
		if b != "" && b != "." && b != "/" {
			base = b
		}
	}
	return fmt.Sprintf("%s/%d_%s.%s", folder, index, base, ext)
}
