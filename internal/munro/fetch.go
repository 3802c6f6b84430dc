package munro

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// Download fetches the dataset at url into cacheDir and returns the local
// file path. Each download gets a fresh uuid-prefixed name so reruns never
// clobber one another. Transport failures and non-2xx responses are
// RetrievalErrors.
func Download(client *http.Client, url, cacheDir string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return "", &RetrievalError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("unexpected status %s: %s", resp.Status, string(b))}
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("cache dir: %w", err)}
	}
	base := path.Base(url)
	if base == "" || base == "." || base == "/" {
		base = "dataset.csv"
	}
	dst := filepath.Join(cacheDir, fmt.Sprintf("%s_%s", uuid.New().String(), base))

	f, err := os.Create(dst)
	if err != nil {
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("create cache file: %w", err)}
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(dst)
		return "", &RetrievalError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return dst, nil
}
