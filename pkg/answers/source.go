package answers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	fetchTimeout = 30 * time.Second
	// maxSourceBytes caps how much of a remote body is read.
	maxSourceBytes = 64 << 20
)

// Fetch reads raw answer-sheet data from a file path or an http(s) URL.
func Fetch(ctx context.Context, source string) (data []byte, err error) {
	parsedURL, urlErr := url.Parse(source)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, err = fetchFromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch answers from URL: %s", source)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch answers from file: %s", source)
		return data, err
	}

	return data, err
}

func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "archetype-match/1.0")
	req.Header.Set("Accept", "application/json, application/x-ndjson")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("fetched content is empty")
		return data, err
	}

	return data, err
}
