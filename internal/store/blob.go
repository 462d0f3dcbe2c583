package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BlobStore persists the document as a remotely hosted JSON blob: GET to
// load, PUT to save the full payload back.
type BlobStore struct {
	url    string
	client *http.Client
}

// NewBlobStore creates a document store backed by the blob at url.
func NewBlobStore(url string) *BlobStore {
	return &BlobStore{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Load fetches and decodes the blob.
func (s *BlobStore) Load(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building blob request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching blob: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching blob: unexpected status %d", resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding blob: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save replaces the blob with the full document.
func (s *BlobStore) Save(ctx context.Context, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding blob: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building blob request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("writing blob: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("writing blob: unexpected status %d", resp.StatusCode)
	}
	return nil
}
