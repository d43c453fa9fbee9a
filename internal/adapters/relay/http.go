package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clawpic/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// HTTP delivers messages by posting directly to the openclaw gateway.
type HTTP struct {
	gatewayURL string
	token      string
}

func NewHTTP(gatewayURL, token string) *HTTP {
	return &HTTP{gatewayURL: gatewayURL, token: token}
}

type gatewayMessage struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
	Message string `json:"message"`
	Media   string `json:"media"`
}

func (h *HTTP) Send(ctx context.Context, message domain.RelayMessage) error {
	payload := gatewayMessage{
		Action:  "send",
		Channel: message.Channel,
		Message: message.Caption,
		Media:   message.MediaURL,
	}

	payloadBuf := new(bytes.Buffer)
	err := json.NewEncoder(payloadBuf).Encode(payload)
	if err != nil {
		return fmt.Errorf("error encoding gateway message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.gatewayURL+"/message", payloadBuf)
	if err != nil {
		return fmt.Errorf("error creating gateway request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Add("Authorization", "Bearer "+h.token)
	}

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return &domain.RelayError{Transport: "http", Detail: err.Error()}
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("error reading gateway response: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &domain.RelayError{Transport: "http", Detail: string(body)}
	}

	log.Debug().Str("channel", message.Channel).Msg("gateway accepted message")

	return nil
}
