package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/ports"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa InsightService.
var _ ports.InsightService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador que implementa InsightService usando la API REST
// de Anthropic (Claude). Usa net/http; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Provider devuelve el nombre del proveedor.
func (s *AnthropicService) Provider() string { return "anthropic" }

// AnalyzeInventoryHealth envía el catálogo a Claude y devuelve el análisis en Markdown.
func (s *AnthropicService) AnalyzeInventoryHealth(ctx context.Context, items []*entity.StockItem) (string, error) {
	text, err := s.generate(ctx, healthSystemPrompt, catalogSummary(items))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestRestockPlan pide a Claude un plan de reposición en JSON y lo parsea.
// Claude puede envolver el JSON en markdown, por eso el parseo pasa por extractJSONArray.
func (s *AnthropicService) SuggestRestockPlan(ctx context.Context, items []*entity.StockItem) ([]dto.RestockSuggestionDTO, error) {
	text, err := s.generate(ctx, restockSystemPrompt, catalogSummary(items))
	if err != nil {
		return nil, err
	}
	cleanJSON := extractJSONArray(text)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", text)
	}
	var payload llmRestockPayload
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de reposición: %w (JSON extraído: %s)", err, cleanJSON)
	}
	out := make([]dto.RestockSuggestionDTO, 0, len(payload))
	for _, p := range payload {
		out = append(out, dto.RestockSuggestionDTO{Item: p.Item, Suggestion: p.Suggestion})
	}
	return out, nil
}

// generate hace una llamada Messages y devuelve el texto del primer bloque.
func (s *AnthropicService) generate(ctx context.Context, system, user string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}
