package designai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"la-interior-backend/internal/models"
)

// Client talks to the generative AI API that backs every suggestion
// and image-generation operation. One client is shared by all callers.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type PaletteResult struct {
	Palette   []string `json:"palette"`
	Reasoning string   `json:"reasoning"`
}

type WallColorResult struct {
	WallColors []models.DetectedWallColor `json:"wallColors"`
	Reasoning  string                     `json:"reasoning"`
}

type SheenResult struct {
	SuggestedSheen string `json:"suggestedSheen"`
	Reasoning      string `json:"reasoning"`
}

type InspirationResult struct {
	ImageDataURI  string `json:"imageDataUri"`
	RevisedPrompt string `json:"revisedPrompt,omitempty"`
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType   string   `json:"response_mime_type,omitempty"`
	ResponseModalities []string `json:"response_modalities,omitempty"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generation_config,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		// Generative endpoints are quota-billed; cap the request rate
		// client-side instead of burning quota on bursts.
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// maxGenerateAttempts bounds the retries around each generation call.
const maxGenerateAttempts = 3

func (c *Client) generate(ctx context.Context, req generateRequest) (*generateResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result *generateResponse
	err = c.RetryWithBackoff(ctx, func() error {
		resp, err := c.doGenerate(ctx, jsonData)
		if err != nil {
			return err
		}
		result = resp
		return nil
	}, maxGenerateAttempts)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// doGenerate performs a single generation request. Rate-limit and
// server-side failures come back retryable; anything the caller sent
// wrong is wrapped as permanent so the retry loop stops immediately.
func (c *Client) doGenerate(ctx context.Context, jsonData []byte) (*generateResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &permanentError{fmt.Errorf("rate limiter: %w", err)}
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/models/" + c.model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &permanentError{fmt.Errorf("failed to create request: %w", err)}
	}

	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("generation failed: status %d, body: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, statusErr
		}
		return nil, &permanentError{statusErr}
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &permanentError{fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))}
	}

	if len(result.Candidates) == 0 {
		// The model occasionally returns an empty candidate list; worth
		// another attempt.
		return nil, fmt.Errorf("no candidates in response, body: %s", string(body))
	}

	return &result, nil
}

// generateJSON runs a structured-output request and unmarshals the
// first text part into out.
func (c *Client) generateJSON(ctx context.Context, parts []generatePart, out interface{}) error {
	resp, err := c.generate(ctx, generateRequest{
		Contents:         []generateContent{{Parts: parts}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return err
	}

	text := firstText(resp)
	if text == "" {
		return fmt.Errorf("no text payload in response")
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to decode suggestion payload: %w, text: %s", err, text)
	}
	return nil
}

func firstText(resp *generateResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

func firstImage(resp *generateResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return "data:" + part.InlineData.MimeType + ";base64," + part.InlineData.Data
		}
	}
	return ""
}

// photoPart converts a "data:<mime>;base64,<data>" URI into an inline
// image part.
func photoPart(photoDataURI string) (generatePart, error) {
	rest, ok := strings.CutPrefix(photoDataURI, "data:")
	if !ok {
		return generatePart{}, fmt.Errorf("photo is not a data URI")
	}
	mimeType, data, ok := strings.Cut(rest, ";base64,")
	if !ok || mimeType == "" || data == "" {
		return generatePart{}, fmt.Errorf("photo data URI is malformed")
	}
	return generatePart{InlineData: &inlineData{MimeType: mimeType, Data: data}}, nil
}

func (c *Client) DetectWallColors(ctx context.Context, photoDataURI string) (*WallColorResult, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return nil, err
	}

	prompt := `You are an AI expert in interior design and image analysis.
Analyze the provided image of a room and identify the primary wall surfaces,
ignoring trim, windows, doors, large furniture, and decor items.
Determine the dominant color(s) of the identified wall surfaces. If there are
multiple distinct wall colors (for example an accent wall), list each one you
can confidently identify.
Respond with a JSON object: {"wallColors": [{"hex": "#RRGGBB", "name": "Common color name"}],
"reasoning": "How the colors were identified and any challenges such as shadows or lighting."}`

	var result WallColorResult
	if err := c.generateJSON(ctx, []generatePart{photo, {Text: prompt}}, &result); err != nil {
		return nil, fmt.Errorf("wall color detection failed: %w", err)
	}
	if len(result.WallColors) == 0 {
		return nil, fmt.Errorf("wall color detection returned no colors")
	}
	return &result, nil
}

func (c *Client) GeneratePalette(ctx context.Context, photoDataURI string) (*PaletteResult, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return nil, err
	}

	prompt := `You are an expert interior design AI. Analyze the provided room image
and suggest a harmonious palette of wall paint colors that would suit the room's
furniture, lighting, and style.
Respond with a JSON object: {"palette": ["#RRGGBB", ...], "reasoning": "Why these colors suit the room."}`

	var result PaletteResult
	if err := c.generateJSON(ctx, []generatePart{photo, {Text: prompt}}, &result); err != nil {
		return nil, fmt.Errorf("palette generation failed: %w", err)
	}
	if len(result.Palette) == 0 {
		return nil, fmt.Errorf("palette generation returned no colors")
	}
	return &result, nil
}

func (c *Client) SuggestPaletteFromPreferences(ctx context.Context, photoDataURI string, answers models.QuestionnaireAnswers) (*PaletteResult, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert interior design AI consultant. A user has
provided an image of their room and detailed their preferences. Suggest a
harmonious color palette of 3 to 5 hex color codes suitable for painting the
walls. Prioritize the stated preferences over the image content, using the
image only for room context.

User preferences:
- Favorite color: %s
- Desired mood: %s
- Age range: %s
- Preferred theme: %s
- Room type: %s
- Desired lighting feel: %s

Respond with a JSON object: {"palette": ["#RRGGBB", ...], "reasoning": "How the palette follows the preferences."}`,
		answers.FavoriteColor, answers.Mood, answers.AgeRange,
		answers.Theme, answers.RoomType, answers.LightingPreference)

	var result PaletteResult
	if err := c.generateJSON(ctx, []generatePart{photo, {Text: prompt}}, &result); err != nil {
		return nil, fmt.Errorf("preference palette failed: %w", err)
	}
	if len(result.Palette) == 0 {
		return nil, fmt.Errorf("preference palette returned no colors")
	}
	if len(result.Palette) < 3 || len(result.Palette) > 5 {
		// The model was asked for 3-5; an out-of-range palette is still
		// usable, so keep it and note the drift.
		log.Printf("preference palette returned %d colors, expected 3-5", len(result.Palette))
	}
	return &result, nil
}

func (c *Client) SuggestComplementaryColors(ctx context.Context, photoDataURI, color string) (*PaletteResult, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert interior design AI. The user has chosen %s
as a wall color for the room in the provided image. Suggest complementary
colors that work well with the chosen color for accents, trim, or furnishings
in this room.
Respond with a JSON object: {"palette": ["#RRGGBB", ...], "reasoning": "Why these colors complement the selection."}`, color)

	var result PaletteResult
	if err := c.generateJSON(ctx, []generatePart{photo, {Text: prompt}}, &result); err != nil {
		return nil, fmt.Errorf("complementary color suggestion failed: %w", err)
	}
	if len(result.Palette) == 0 {
		return nil, fmt.Errorf("complementary color suggestion returned no colors")
	}
	return &result, nil
}

func (c *Client) SuggestPaintSheen(ctx context.Context, photoDataURI, color string) (*SheenResult, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert interior design AI. The user intends to paint
the walls of the room in the provided image with the color %s. Considering the
room type, lighting, and likely wear, suggest the most suitable paint sheen
(for example flat, matte, eggshell, satin, semi-gloss, or gloss).
Respond with a JSON object: {"suggestedSheen": "Sheen name", "reasoning": "Why this sheen suits the room and color."}`, color)

	var result SheenResult
	if err := c.generateJSON(ctx, []generatePart{photo, {Text: prompt}}, &result); err != nil {
		return nil, fmt.Errorf("sheen suggestion failed: %w", err)
	}
	if strings.TrimSpace(result.SuggestedSheen) == "" {
		return nil, fmt.Errorf("sheen suggestion returned no sheen")
	}
	return &result, nil
}

// RepaintWall generates a new image of the same room with the primary
// wall surfaces painted in the given color. Returns the repainted
// image as a data URI. If the model produced text instead of an image,
// that text is surfaced as the failure reason.
func (c *Client) RepaintWall(ctx context.Context, photoDataURI, color string) (string, error) {
	photo, err := photoPart(photoDataURI)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are an expert interior design AI. Repaint the large,
primary wall surfaces in the provided room image with the color %s.

Instructions:
1. Identify the prominent wall surfaces that would typically be painted,
   excluding trim, small accent areas, and areas covered by large fixtures.
2. Generate a new image of the exact same room, preserving all furniture,
   decor, windows, lighting, shadows, and room structure.
3. The only significant change must be the target walls painted %s.
4. Maintain realistic lighting, shadows, and textures on the repainted walls.
5. Output only the repainted image. If you cannot perform the repaint
   accurately, explain why in text and do not generate an image.`, color, color)

	resp, err := c.generate(ctx, generateRequest{
		Contents:         []generateContent{{Parts: []generatePart{photo, {Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	})
	if err != nil {
		return "", fmt.Errorf("repaint failed: %w", err)
	}

	image := firstImage(resp)
	if image == "" {
		reason := firstText(resp)
		if reason == "" {
			reason = "unknown error from AI"
		}
		return "", fmt.Errorf("AI failed to generate repainted image: %s", reason)
	}

	return image, nil
}

// GenerateInspirationImage generates a room image from a free-text
// prompt.
func (c *Client) GenerateInspirationImage(ctx context.Context, prompt string) (*InspirationResult, error) {
	resp, err := c.generate(ctx, generateRequest{
		Contents:         []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("inspiration image failed: %w", err)
	}

	image := firstImage(resp)
	if image == "" {
		reason := firstText(resp)
		if reason == "" {
			reason = "unknown error from AI"
		}
		return nil, fmt.Errorf("AI failed to generate image for prompt %q: %s", prompt, reason)
	}

	return &InspirationResult{ImageDataURI: image, RevisedPrompt: firstText(resp)}, nil
}

// permanentError marks failures that retrying cannot fix.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// RetryWithBackoff executes fn up to maxRetries times with exponential
// backoff between attempts. An error wrapped as permanent stops the
// loop and is returned unwrapped.
func (c *Client) RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		lastErr = err
		if i < maxRetries-1 && i < len(backoffs) {
			select {
			case <-time.After(backoffs[i]):
			case <-ctx.Done():
				return fmt.Errorf("retry aborted: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
