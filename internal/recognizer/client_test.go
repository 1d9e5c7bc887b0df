package recognizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/platform/config"
)

func newTestClient() *Client {
	c := NewClient(&config.Config{
		OCREngineURL:    "https://ocr.test/parse/image",
		OCREngineAPIKey: "test-key",
		OCRLanguage:     "eng",
	})
	gock.InterceptClient(c.httpClient)
	return c
}

func TestRecognize_ReturnsParsedText(t *testing.T) {
	defer gock.Off()
	gock.New("https://ocr.test").
		Post("/parse/image").
		MatchHeader("apikey", "test-key").
		Reply(200).
		JSON(map[string]interface{}{
			"ParsedResults": []map[string]string{
				{"ParsedText": "SHOPRITE LAGOS\nTotal VAT: 1,500.00\n"},
			},
			"IsErroredOnProcessing": false,
		})

	c := newTestClient()
	text, err := c.Recognize(context.Background(), strings.NewReader("fake-image"), "receipt.jpg", nil)

	require.NoError(t, err)
	assert.Equal(t, "SHOPRITE LAGOS\nTotal VAT: 1,500.00\n", text)
	assert.True(t, gock.IsDone())
}

func TestRecognize_EngineProcessingError(t *testing.T) {
	defer gock.Off()
	gock.New("https://ocr.test").
		Post("/parse/image").
		Reply(200).
		JSON(map[string]interface{}{
			"ParsedResults":         []map[string]string{},
			"IsErroredOnProcessing": true,
			"ErrorMessage":          "image too blurry",
		})

	c := newTestClient()
	_, err := c.Recognize(context.Background(), strings.NewReader("fake-image"), "receipt.jpg", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "image too blurry")
}

func TestRecognize_NonOKStatus(t *testing.T) {
	defer gock.Off()
	gock.New("https://ocr.test").
		Post("/parse/image").
		Reply(503)

	c := newTestClient()
	_, err := c.Recognize(context.Background(), strings.NewReader("fake-image"), "receipt.jpg", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestRecognize_EmptyParsedResults(t *testing.T) {
	defer gock.Off()
	gock.New("https://ocr.test").
		Post("/parse/image").
		Reply(200).
		JSON(map[string]interface{}{
			"ParsedResults":         []map[string]string{},
			"IsErroredOnProcessing": false,
		})

	c := newTestClient()
	_, err := c.Recognize(context.Background(), strings.NewReader("fake-image"), "receipt.jpg", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parsed results")
}

func TestRecognize_ReportsProgress(t *testing.T) {
	defer gock.Off()
	gock.New("https://ocr.test").
		Post("/parse/image").
		Reply(200).
		JSON(map[string]interface{}{
			"ParsedResults": []map[string]string{{"ParsedText": "Lunch 1,200"}},
		})

	c := newTestClient()
	var reports []portssvc.RecognitionProgress
	_, err := c.Recognize(context.Background(), strings.NewReader("fake-image"), "receipt.jpg",
		func(p portssvc.RecognitionProgress) { reports = append(reports, p) })

	require.NoError(t, err)
	require.NotEmpty(t, reports)
	last := reports[len(reports)-1]
	assert.Equal(t, "recognized", last.Status)
	assert.Equal(t, 1.0, last.Progress)
	for _, p := range reports[:len(reports)-1] {
		assert.LessOrEqual(t, p.Progress, 0.9)
	}
}
