package smsprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/0niran/rhb-send-backend/pkg/httpclient"
)

type Provider interface {
	Send(ctx context.Context, from string, to string, text string) (res Response, err error)
}

type Config struct {
	Enable   bool          `mapstructure:"enable"`
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxRetry int           `mapstructure:"max_retry"`
}

type sendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

type SMSProvider struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewSMSProvider(cfg Config, client httpclient.HTTPClient) Provider {
	return &SMSProvider{cfg: cfg, client: client}
}

func (s *SMSProvider) Send(ctx context.Context, from string, to string, text string) (Response, error) {
	payload, err := json.Marshal(sendRequest{From: from, To: to, Body: text})
	if err != nil {
		return Response{}, errors.New(ErrorCodeServerError)
	}

	headers := map[string]string{"Content-Type": "application/json"}

	resp, err := s.client.Post(ctx, s.cfg.URL, bytes.NewReader(payload), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, errors.New(ErrorCodeTimeout)
		}

		return Response{}, errors.New(ErrorCodeNetworkError)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return Response{}, errors.New(ErrorCodeInvalidNumber)
		default:
			return Response{}, errors.New(ErrorCodeServerError)
		}
	}

	var res Response
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Response{}, errors.New(ErrorCodeServerError)
	}

	return res, nil
}
