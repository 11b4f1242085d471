package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que OpenRouterService implementa LLMService.
var _ ports.LLMService = (*OpenRouterService)(nil)

const (
	systemPrompt = "You are an AI assisting with logistics optimization."

	risksPromptTemplate = `Given the following logistics context:
- Previsions: %s
- Processes: %s
- Constraints: %s

Identify potential risks and suggest decisions to optimize logistics.
Format your response as a JSON list of objects, each containing:
- "risk": A description of the risk.
- "decision": A recommended decision to mitigate the risk.`

	bestDecisionPromptTemplate = `Given the following problem:
- Problem: %s

Based on previous decision contexts:
%s

Suggest the best decision to resolve the problem, considering past decisions.
Format your response as a JSON object with:
- "best_decision": The recommended decision.`
)

// OpenRouterService adaptador que implementa LLMService contra la API de chat
// completions de OpenRouter. Usa net/http de la librería estándar; no requiere SDK.
type OpenRouterService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewOpenRouterService construye el adaptador. url es el endpoint de chat
// completions (configurable para apuntar a un stub en tests).
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewOpenRouterService(apiKey, model, url string) *OpenRouterService {
	return &OpenRouterService{
		apiKey: apiKey,
		model:  model,
		url:    url,
		httpClient: &http.Client{
			// Timeout de red de 60 s; el caso de uso impone además un
			// context.WithTimeout más corto por llamada.
			Timeout: 60 * time.Second,
		},
	}
}

// ── Estructuras del protocolo chat completions ────────────────────────────────

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// AnalyzeRisks envía el contexto de planeación y parsea la lista de pares
// riesgo/decisión de la respuesta del modelo.
func (s *OpenRouterService) AnalyzeRisks(ctx context.Context, c entity.Context) ([]entity.RiskDecision, error) {
	prompt := fmt.Sprintf(risksPromptTemplate,
		joinList(c.Previsions), joinList(c.Processes), joinList(c.Constraints))

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(content)
	if cleanJSON == "" {
		return nil, fmt.Errorf("%w: la respuesta no contiene JSON (contenido: %.200s)", domain.ErrUpstream, content)
	}
	var pairs []entity.RiskDecision
	if err := json.Unmarshal([]byte(cleanJSON), &pairs); err != nil {
		return nil, fmt.Errorf("%w: parsear lista de riesgos/decisiones: %v", domain.ErrUpstream, err)
	}
	return pairs, nil
}

// BestDecision envía el problema y el historial serializado del usuario y
// parsea el objeto {"best_decision": ...} de la respuesta.
func (s *OpenRouterService) BestDecision(ctx context.Context, problem string, history []*entity.DecisionContext) (string, error) {
	serialized, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar historial: %w", err)
	}

	content, err := s.complete(ctx, fmt.Sprintf(bestDecisionPromptTemplate, problem, serialized))
	if err != nil {
		return "", err
	}

	cleanJSON := extractJSON(content)
	if cleanJSON == "" {
		return "", fmt.Errorf("%w: la respuesta no contiene JSON (contenido: %.200s)", domain.ErrUpstream, content)
	}
	var out struct {
		BestDecision json.RawMessage `json:"best_decision"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &out); err != nil || len(out.BestDecision) == 0 {
		return "", fmt.Errorf("%w: parsear best_decision: %v", domain.ErrUpstream, err)
	}
	// Normalmente es un string JSON; si el modelo devuelve otra cosa, se
	// entrega la representación cruda.
	var decision string
	if err := json.Unmarshal(out.BestDecision, &decision); err != nil {
		decision = string(out.BestDecision)
	}
	return decision, nil
}

// complete ejecuta una llamada de chat completions y devuelve el contenido
// del primer choice. Distingue el 401 (ErrUpstreamAuth) del resto de fallos
// (ErrUpstream).
func (s *OpenRouterService) complete(ctx context.Context, userPrompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: OPENROUTER_API_KEY no configurado", domain.ErrUpstreamAuth)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpstream, ctx.Err())
		}
		return "", fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: revisa la API key", domain.ErrUpstreamAuth)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d: %.200s", domain.ErrUpstream, resp.StatusCode, string(rawBody))
	}

	var envelope chatResponse
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return "", fmt.Errorf("%w: deserializar sobre de respuesta: %v", domain.ErrUpstream, err)
	}
	if envelope.Error != nil {
		return "", fmt.Errorf("%w: error del upstream: %s", domain.ErrUpstream, envelope.Error.Message)
	}
	if len(envelope.Choices) == 0 {
		return "", fmt.Errorf("%w: respuesta sin choices", domain.ErrUpstream)
	}
	return envelope.Choices[0].Message.Content, nil
}

// joinList formatea una lista para incrustarla en el prompt como ["a", "b"].
func joinList(items []string) string {
	b, _ := json.Marshal(items)
	return string(b)
}
