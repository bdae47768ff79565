package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/polenmarket/polen/internal/clock"
)

// BlobStore stores an uploaded blob and returns its publicly fetchable URL.
type BlobStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// ObjectKey derives a collision-resistant storage key from the upload time
// and the original filename, mirroring the legacy `<millis>_<name>` scheme.
func ObjectKey(clk clock.Clock, filename string) string {
	return fmt.Sprintf("%d_%s", clk.Now().UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
