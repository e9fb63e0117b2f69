package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/contentloom/console/internal/models"
	appErrors "github.com/contentloom/console/pkg/errors"
)

// Client talks to the CMS REST surface the console consumes. All calls are
// context-bound and fallible; callers decide how failures surface in the UI.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client for the given base URL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type uploadRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
}

type entriesEnvelope struct {
	Entries []models.Record `json:"entries"`
}

type errorBody struct {
	Message string `json:"message"`
}

// GetContentType fetches the schema for one content type.
func (c *Client) GetContentType(ctx context.Context, apiID string) (*models.ContentType, error) {
	var ct models.ContentType
	path := "/api/content-types/" + url.PathEscape(apiID)
	if err := c.getJSON(ctx, path, &ct); err != nil {
		return nil, err
	}
	if ct.APIID == "" {
		ct.APIID = apiID
	}
	return &ct, nil
}

// ListEntries fetches one page of records for a content type.
func (c *Client) ListEntries(ctx context.Context, apiID string, page, limit int) ([]models.Record, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	path := "/api/content/" + url.PathEscape(apiID) + "?" + q.Encode()

	var envelope entriesEnvelope
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Entries, nil
}

// ListMedia fetches the full media listing. The backend offers no server-side
// filter; callers filter client-side.
func (c *Client) ListMedia(ctx context.Context) ([]models.MediaRecord, error) {
	var media []models.MediaRecord
	if err := c.getJSON(ctx, "/api/media", &media); err != nil {
		return nil, err
	}
	return media, nil
}

// UploadMedia posts one file as a base64 JSON payload and returns the created
// media record.
func (c *Client) UploadMedia(ctx context.Context, fileName string, data []byte) (*models.MediaRecord, error) {
	body, err := json.Marshal(uploadRequest{
		File:     base64.StdEncoding.EncodeToString(data),
		FileName: fileName,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, "encode upload payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/media", bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, "build upload request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, "media upload failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated {
		return nil, c.statusError(resp, appErrors.ErrUploadFailed)
	}

	var created models.MediaRecord
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, "decode upload response")
	}

	c.logger.Debug("media uploaded", zap.String("id", created.ID), zap.String("file_name", fileName))
	return &created, nil
}

// DeleteMedia removes a stored media record.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/media/"+url.PathEscape(id), nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build delete request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "media delete failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return c.statusError(resp, appErrors.ErrFetchFailed)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, fmt.Sprintf("fetch %s failed", path))
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return c.statusError(resp, appErrors.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp, appErrors.ErrFetchFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, fmt.Sprintf("decode %s response", path))
	}

	c.logger.Debug("backend fetch", zap.String("path", path), zap.Duration("latency", time.Since(start)))
	return nil
}

// statusError extracts the backend's `{message}` body when present.
func (c *Client) statusError(resp *http.Response, base *appErrors.Error) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return appErrors.Clone(base, body.Message)
	}
	return appErrors.Clone(base, fmt.Sprintf("backend returned status %d", resp.StatusCode))
}
