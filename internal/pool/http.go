package pool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/question"
)

// QuestionsPath is the pool endpoint served by the back-office API.
const QuestionsPath = "/api/questions"

// maxPoolBytes caps the size of a fetched pool.
const maxPoolBytes = 16 << 20

// HTTPSource fetches the pool from a running nmt API server.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewHTTPSource returns an HTTPSource with a 15s client timeout.
func NewHTTPSource(baseURL string, logger *zap.Logger) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
		Logger:  logger,
	}
}

func (h *HTTPSource) Fetch(ctx context.Context) ([]question.Question, error) {
	url := h.BaseURL + QuestionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, unavailable(url, err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, unavailable(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(url, fmt.Errorf("status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPoolBytes))
	if err != nil {
		return nil, unavailable(url, fmt.Errorf("read body: %w", err))
	}
	return decode(url, data, h.Logger)
}
