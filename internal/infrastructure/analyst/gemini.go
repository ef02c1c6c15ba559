// Package analyst implements the external business-analysis collaborator on
// top of the Gemini generateContent REST API.
package analyst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
	requestTimeout = 30 * time.Second
)

// Config holds the analyst settings. An empty APIKey leaves the integration
// unconfigured; callers then receive domain.ErrAnalysisNotConfigured.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiClient struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewGeminiClient(cfg Config, log zerolog.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &GeminiClient{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
		log:    log,
	}
}

var _ ports.Analyst = (*GeminiClient)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Analyze renders the snapshot into a Russian analyst prompt and returns the
// model's free-text report.
func (g *GeminiClient) Analyze(ctx context.Context, snapshot ports.BusinessSnapshot) (string, error) {
	if g.cfg.APIKey == "" {
		return "", domain.ErrAnalysisNotConfigured
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode snapshot: %w", domain.ErrAnalysisFailed, err)
	}

	prompt := fmt.Sprintf(`Ты - опытный бизнес-аналитик для видеопродакшн студии "ATMA VISION".
Проанализируй следующие данные о заказах и услугах (в формате JSON):

%s

Пожалуйста, предоставь краткий отчет на русском языке, включающий:
1. Общую оценку эффективности продаж.
2. Какая услуга кажется наиболее популярной (или какая категория).
3. Рекомендации по увеличению выручки на основе этих данных.
4. Если данных мало, предложи стратегии маркетинга для видеостудии.

Ответ должен быть профессиональным, но понятным, с использованием Markdown.`, data)

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", domain.ErrAnalysisFailed, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.Model, g.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrAnalysisFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrAnalysisFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		g.log.Warn().Int("status", resp.StatusCode).Msg("analyst API returned non-200")
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrAnalysisFailed, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrAnalysisFailed, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "Не удалось получить ответ от AI.", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
