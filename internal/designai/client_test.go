package designai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"la-interior-backend/internal/designai"
)

const testPhoto = "data:image/png;base64,dGVzdC1waG90bw=="

func textResponse(text string) string {
	payload := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func imageResponse(mimeType, data string) string {
	payload := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{
						"inline_data": map[string]any{"mime_type": mimeType, "data": data},
					}},
				},
			},
		},
	}
	encoded, _ := json.Marshal(payload)
	return string(encoded)
}

func newTestClient(handler http.HandlerFunc) (*designai.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return designai.NewClient(server.URL, "test-key", "test-model"), server
}

func TestClient_GeneratePalette(t *testing.T) {
	var gotPath, gotKey string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write([]byte(textResponse(`{"palette": ["#112233", "#445566"], "reasoning": "warm tones"}`)))
	})
	defer server.Close()

	result, err := client.GeneratePalette(context.Background(), testPhoto)
	require.NoError(t, err)

	assert.Equal(t, []string{"#112233", "#445566"}, result.Palette)
	assert.Equal(t, "warm tones", result.Reasoning)
	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_GeneratePalette_EmptyPaletteIsError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"palette": [], "reasoning": "nothing"}`)))
	})
	defer server.Close()

	_, err := client.GeneratePalette(context.Background(), testPhoto)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no colors")
}

func TestClient_DetectWallColors(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"wallColors": [{"hex": "#EEDDCC", "name": "Light Beige"}], "reasoning": "dominant surface"}`)))
	})
	defer server.Close()

	result, err := client.DetectWallColors(context.Background(), testPhoto)
	require.NoError(t, err)

	require.Len(t, result.WallColors, 1)
	assert.Equal(t, "#EEDDCC", result.WallColors[0].Hex)
	assert.Equal(t, "Light Beige", result.WallColors[0].Name)
}

func TestClient_RepaintWall_ReturnsDataURI(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imageResponse("image/png", "cmVwYWludGVk")))
	})
	defer server.Close()

	image, err := client.RepaintWall(context.Background(), testPhoto, "#AABBCC")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cmVwYWludGVk", image)
}

func TestClient_RepaintWall_TextOnlyIsFailure(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("The walls are fully obscured by furniture.")))
	})
	defer server.Close()

	_, err := client.RepaintWall(context.Background(), testPhoto, "#AABBCC")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fully obscured")
}

func TestClient_RejectsNonDataURIPhoto(t *testing.T) {
	called := false
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	_, err := client.GeneratePalette(context.Background(), "https://example.com/room.png")
	assert.Error(t, err)
	assert.False(t, called)
}

func TestClient_ClientErrorIsSurfacedWithoutRetry(t *testing.T) {
	requests := 0
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "invalid argument", http.StatusBadRequest)
	})
	defer server.Close()

	_, err := client.GeneratePalette(context.Background(), testPhoto)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, 1, requests)
}

func TestClient_RetriesTransientServerFailures(t *testing.T) {
	requests := 0
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			http.Error(w, "backend overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(textResponse(`{"palette": ["#112233", "#445566", "#778899"], "reasoning": "warm tones"}`)))
	})
	defer server.Close()

	result, err := client.GeneratePalette(context.Background(), testPhoto)
	require.NoError(t, err)
	assert.Len(t, result.Palette, 3)
	assert.Equal(t, 3, requests)
}

func TestClient_GenerateInspirationImage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imageResponse("image/png", "aW5zcGlyYXRpb24=")))
	})
	defer server.Close()

	result, err := client.GenerateInspirationImage(context.Background(), "cozy scandinavian bedroom")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aW5zcGlyYXRpb24=", result.ImageDataURI)
}

func TestClient_RetryWithBackoff(t *testing.T) {
	client := designai.NewClient("https://api.test.com/v1", "test-key", "test-model")

	callCount := 0
	err := client.RetryWithBackoff(context.Background(), func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_CancelledContextStops(t *testing.T) {
	client := designai.NewClient("https://api.test.com/v1", "test-key", "test-model")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	callCount := 0
	err := client.RetryWithBackoff(ctx, func() error {
		callCount++
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retry aborted")
	assert.Equal(t, 1, callCount)
}
