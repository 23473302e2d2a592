package resumes

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FileDownloader fetches resume bytes from the URL produced by the file host.
type FileDownloader interface {
	Download(ctx context.Context, fileURL string) ([]byte, error)
}

// HTTPDownloader implements FileDownloader over plain HTTP. One attempt per
// call; transient failures are not retried.
type HTTPDownloader struct {
	Client *http.Client
}

func (d *HTTPDownloader) Download(ctx context.Context, fileURL string) ([]byte, error) {
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
