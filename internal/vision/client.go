package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Detection es la salida del servicio de visión: condiciones nombradas
// con confianza, más el tipo de piel si el modelo lo pudo estimar.
type Detection struct {
	SkinType   string         `json:"skin_type,omitempty"`
	Conditions []RawCondition `json:"conditions"`
}

// RawCondition es una condición tal como la reporta el detector, sin
// anotar todavía con los metadatos del catálogo.
type RawCondition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description,omitempty"`
}

// Client define la interfaz hacia el servicio de detección de piel.
type Client interface {
	Detect(ctx context.Context, imageURL string) (Detection, error)
}

// HTTPClient implementa Client contra la API HTTP del detector.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient construye un cliente apuntando al endpoint de análisis.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *HTTPClient) Detect(ctx context.Context, imageURL string) (Detection, error) {
	reqBody := detectRequest{ImageURL: imageURL}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Detection{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/detect", bytes.NewReader(bodyBytes))
	if err != nil {
		return Detection{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Detection{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Detection{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return Detection{}, fmt.Errorf("vision http error: status=%d", resp.StatusCode)
	}

	var dr detectResponse
	if err := json.Unmarshal(respBody, &dr); err != nil {
		return Detection{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if dr.Error != nil {
		return Detection{}, fmt.Errorf("vision api error: %s", dr.Error.Message)
	}

	return dr.Detection, nil
}

type detectRequest struct {
	ImageURL string `json:"image_url"`
}

type detectResponse struct {
	Detection Detection `json:"detection"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
