package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/pkg/config"

	"go.uber.org/zap"
)

var (
	// ErrExtractionFailed reports a non-success reply from the AI gateway.
	ErrExtractionFailed = errors.New("ai extraction failed")
	// ErrUnparsableReply reports a model reply with no recoverable JSON object.
	ErrUnparsableReply = errors.New("could not parse invoice data from ai response")
)

// extractionSystemPrompt pins the model to a bare JSON object so the reply
// can be decoded without conversation scaffolding. Amounts are requested in
// integer minor currency units up front instead of post-converting floats.
const extractionSystemPrompt = `You are an invoice data extractor. Extract the following fields from the invoice document and return ONLY a JSON object with no other text:
{
  "client_name": "string",
  "client_email": "string or null",
  "client_phone": "string or null",
  "invoice_number": "string or null",
  "amount": number (in euro cents, e.g. €2,400 = 240000),
  "invoice_date": "YYYY-MM-DD or null",
  "due_date": "YYYY-MM-DD or null"
}
If you can't determine a field, use null. Amount must always be a positive integer in cents.`

// GatewayExtractor extracts invoice fields by calling an OpenAI-compatible
// chat completions gateway with the document embedded as an inline data URL.
type GatewayExtractor struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

func NewGatewayExtractor(cfg *config.AIConfig, logger *zap.Logger) *GatewayExtractor {
	return &GatewayExtractor{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     logger,
	}
}

// ExtractInvoice sends one chat completion request and decodes the JSON
// object embedded in the model's free-text reply. No retries: any gateway
// failure is terminal for the request.
func (s *GatewayExtractor) ExtractInvoice(ctx context.Context, content []byte, contentType, fileName string) (*dto.ExtractedInvoice, error) {
	if contentType == "" {
		contentType = "application/pdf"
	}
	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)

	requestBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": extractionSystemPrompt,
			},
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": fmt.Sprintf("Extract invoice data from this document (filename: %s).", fileName),
					},
					{
						"type":      "image_url",
						"image_url": map[string]string{"url": dataURL},
					},
				},
			},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.logger.Error("AI extraction error",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
		)
		return nil, fmt.Errorf("%w: status %d", ErrExtractionFailed, resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in reply", ErrUnparsableReply)
	}

	extracted, err := parseExtractedInvoice(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice fields extracted",
		zap.String("file_name", fileName),
		zap.String("model", s.model),
	)

	return extracted, nil
}

// parseExtractedInvoice recovers the first JSON-object-shaped substring from
// the model's reply. The model is not trusted to return a clean payload: it
// may wrap the object in prose or markdown fences.
func parseExtractedInvoice(content string) (*dto.ExtractedInvoice, error) {
	content = strings.TrimSpace(content)

	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrUnparsableReply)
	}

	jsonStr := content[jsonStart : jsonEnd+1]

	var extracted dto.ExtractedInvoice
	if err := json.Unmarshal([]byte(jsonStr), &extracted); err != nil {
		// Strip markdown code fences if present and retry once
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), &extracted); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparsableReply, err)
		}
	}

	return &extracted, nil
}
