package emotionPredict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	apiTimeout = 10

	// maxBodySize caps how much of a response is read. A longer body is
	// truncated and then fails to decode.
	maxBodySize = 1 << 20

	// ModelHeader selects the model workflow on the remote runtime.
	ModelHeader = "grpc-metadata-mm-model-id"

	DefaultEndpoint = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DefaultModelID  = "emotion_aggregated-workflow_lang_en_stock"
)

// ErrShape reports a response that arrived but does not match the expected schema.
var ErrShape = errors.New("unexpected emotion response shape")

type Client struct {
	apiEndpoint string
	modelID     string
	timeout     time.Duration
	client      *http.Client
}

// New constructs a client for the emotion prediction endpoint. A zero timeout
// falls back to the default of ten seconds.
func New(apiEndpoint string, modelID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = apiTimeout * time.Second
	}
	return &Client{
		apiEndpoint: apiEndpoint,
		modelID:     modelID,
		timeout:     timeout,
		client:      &http.Client{},
	}
}

// EmotionPredict sends a single request for text and returns the first
// prediction. There is no retry.
func (c *Client) EmotionPredict(ctx context.Context, text string) (Emotion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	b, err := json.Marshal(Request{RawDocument: RawDocument{Text: text}})
	if err != nil {
		return Emotion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiEndpoint, bytes.NewReader(b))
	if err != nil {
		return Emotion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ModelHeader, c.modelID)

	resp, err := c.client.Do(req)
	if err != nil {
		return Emotion{}, fmt.Errorf("emotion predict request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Emotion{}, fmt.Errorf("emotion predict read body: %w", err)
	}

	if resp.StatusCode == http.StatusInternalServerError {
		return Emotion{}, fmt.Errorf("internal server error 500: %s", string(body))
	}

	if resp.StatusCode != http.StatusOK {
		return Emotion{}, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return decode(body)
}

// decode extracts emotionPredictions[0].emotion with exact key matching.
func decode(body []byte) (Emotion, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return Emotion{}, fmt.Errorf("%w: %w", ErrShape, err)
	}

	raw, ok := top[keyPredictions]
	if !ok {
		return Emotion{}, fmt.Errorf("%w: missing %s", ErrShape, keyPredictions)
	}

	var predictions []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &predictions); err != nil {
		return Emotion{}, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if len(predictions) == 0 {
		return Emotion{}, fmt.Errorf("%w: no %s", ErrShape, keyPredictions)
	}

	raw, ok = predictions[0][keyEmotion]
	if !ok {
		return Emotion{}, fmt.Errorf("%w: missing %s", ErrShape, keyEmotion)
	}

	var scores map[string]*float64
	if err := json.Unmarshal(raw, &scores); err != nil {
		return Emotion{}, fmt.Errorf("%w: %w", ErrShape, err)
	}

	var v [len(scoreKeys)]float64
	for i, k := range scoreKeys {
		p := scores[k]
		if p == nil {
			return Emotion{}, fmt.Errorf("%w: missing %s", ErrShape, k)
		}
		v[i] = *p
	}

	return Emotion{
		Anger:   v[0],
		Disgust: v[1],
		Fear:    v[2],
		Joy:     v[3],
		Sadness: v[4],
	}, nil
}
