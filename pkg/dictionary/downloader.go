package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrRetrieval wraps transport and HTTP status failures while fetching a source file.
var ErrRetrieval = errors.New("retrieval failed")

// NewClient returns the HTTP client used for source downloads. Requests are
// attempted once; there is no retry policy.
func NewClient(timeout time.Duration, userAgent string) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetDoNotParseResponse(true)
}

// EnsureDataset checks if the file exists at path.
// If not, it downloads url into path. The file only appears once the whole
// body has been written, so a failed download leaves nothing behind.
func EnsureDataset(ctx context.Context, client *resty.Client, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	slog.InfoContext(ctx, "source file not found, downloading",
		slog.String("path", path),
		slog.String("url", url),
	)
	start := time.Now()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrRetrieval, url, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: GET %s: status %s", ErrRetrieval, url, resp.Status())
	}

	n, err := writeAtomically(path, body)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrRetrieval, url, err)
	}

	slog.InfoContext(ctx, "downloaded source file",
		slog.String("path", path),
		slog.Int64("bytes", n),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// writeAtomically copies r into a temp file next to path and renames it into place.
func writeAtomically(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.part")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return n, err
	}
	if err := tmp.Close(); err != nil {
		return n, err
	}
	return n, os.Rename(tmp.Name(), path)
}
