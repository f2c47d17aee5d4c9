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

// Verificar en tiempo de compilación que GeminiService implementa InsightService.
var _ ports.InsightService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiService adaptador que implementa InsightService llamando a la API REST
// de Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error descriptivo.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Provider devuelve el nombre del proveedor.
func (s *GeminiService) Provider() string { return "gemini" }

// AnalyzeInventoryHealth envía el catálogo a Gemini y devuelve el análisis en Markdown.
func (s *GeminiService) AnalyzeInventoryHealth(ctx context.Context, items []*entity.StockItem) (string, error) {
	text, err := s.generate(ctx, healthSystemPrompt, catalogSummary(items), "text/plain", 1024)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestRestockPlan pide a Gemini un plan de reposición en JSON y lo parsea.
func (s *GeminiService) SuggestRestockPlan(ctx context.Context, items []*entity.StockItem) ([]dto.RestockSuggestionDTO, error) {
	// response_mime_type=application/json obliga a Gemini a devolver JSON puro.
	text, err := s.generate(ctx, restockSystemPrompt, catalogSummary(items), "application/json", 1024)
	if err != nil {
		return nil, err
	}
	var payload llmRestockPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, text)
	}
	out := make([]dto.RestockSuggestionDTO, 0, len(payload))
	for _, p := range payload {
		out = append(out, dto.RestockSuggestionDTO{Item: p.Item, Suggestion: p.Suggestion})
	}
	return out, nil
}

// generate hace una llamada generateContent y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, system, user, mimeType string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: system}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: user}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: mimeType,
			Temperature:      0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens:  maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}
