// Package recognizer talks to the external OCR engine that turns receipt
// images into raw text. The engine is a plain HTTP service taking a
// multipart upload and answering with parsed text blocks.
package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/platform/config"
)

// uploadProgressCeiling caps upload-phase progress so the remote parsing
// phase still has visible headroom.
const uploadProgressCeiling = 0.9

// Client is an HTTP ReceiptRecognizer.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	language   string
}

// engineResponse is the OCR engine's wire format.
type engineResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool   `json:"IsErroredOnProcessing"`
	ErrorMessage          string `json:"ErrorMessage,omitempty"`
}

// NewClient creates a recognizer client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   cfg.OCREngineURL,
		apiKey:     cfg.OCREngineAPIKey,
		language:   cfg.OCRLanguage,
	}
}

var _ portssvc.ReceiptRecognizer = (*Client)(nil)

// Recognize uploads one image and returns the engine's parsed text.
// Upload progress is reported against the buffered request size; the final
// report fires once the engine has answered.
func (c *Client) Recognize(ctx context.Context, image io.Reader, fileName string, onProgress portssvc.ProgressFunc) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("language", c.language); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", fileName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	upload := &progressReader{
		reader: &body,
		total:  int64(body.Len()),
		report: onProgress,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, upload)
	if err != nil {
		return "", fmt.Errorf("failed to build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognition engine returned status %s", resp.Status)
	}

	var parsed engineResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode recognition response: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("recognition engine error: %s", parsed.ErrorMessage)
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("recognition engine returned no parsed results for %s", fileName)
	}

	if onProgress != nil {
		onProgress(portssvc.RecognitionProgress{Status: "recognized", Progress: 1})
	}
	return parsed.ParsedResults[0].ParsedText, nil
}

// progressReader reports upload progress as the request body drains.
type progressReader struct {
	reader io.Reader
	total  int64
	sent   int64
	report portssvc.ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	p.sent += int64(n)
	if p.report != nil && p.total > 0 && n > 0 {
		fraction := float64(p.sent) / float64(p.total)
		if fraction > 1 {
			fraction = 1
		}
		p.report(portssvc.RecognitionProgress{
			Status:   "uploading",
			Progress: fraction * uploadProgressCeiling,
		})
	}
	return n, err
}
