package httpverb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
)

func (c *Client) Get(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, noBody, opts)
}

func (c *Client) Head(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodHead, url, noBody, opts)
}

func (c *Client) Options(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodOptions, url, noBody, opts)
}

func (c *Client) Delete(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, noBody, opts)
}

func (c *Client) Put(ctx context.Context, url string, data []byte, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, rawBody(data), opts)
}

func (c *Client) PutJSON(ctx context.Context, url string, v any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, jsonBody(v), opts)
}

func (c *Client) Post(ctx context.Context, url string, data []byte, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, rawBody(data), opts)
}

func (c *Client) PostJSON(ctx context.Context, url string, v any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, jsonBody(v), opts)
}

// PostFiles uploads files as a multipart form. files maps form field names to
// local paths.
func (c *Client) PostFiles(ctx context.Context, url string, files map[string]string, fields map[string]string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, url, multipartBody(files, fields), opts)
}

func (c *Client) Patch(ctx context.Context, url string, data []byte, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, url, rawBody(data), opts)
}

func (c *Client) PatchJSON(ctx context.Context, url string, v any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, url, jsonBody(v), opts)
}

func multipartBody(files map[string]string, fields map[string]string) payload {
	return func() (io.Reader, string, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		for _, k := range sortedKeys(fields) {
			if err := w.WriteField(k, fields[k]); err != nil {
				return nil, "", err
			}
		}

		for _, field := range sortedKeys(files) {
			path := files[field]
			if err := writeFilePart(w, field, path); err != nil {
				return nil, "", err
			}
		}

		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	}
}

func writeFilePart(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for upload: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
