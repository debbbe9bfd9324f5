package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/config"
	"github.com/bookkeep/lending-service/library/internal/model"
	"github.com/bookkeep/lending-service/pkg/breaker"
)

// Gateway is the HTTP client for the payment service. A non-2xx reply or a
// transport failure surfaces as an error; a declined charge comes back inside
// the decoded outcome. The breaker fails fast while the collaborator is down
// but never retries a call.
type Gateway struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.PaymentHTTPServer
	cb     *breaker.Breaker
}

func New(cfg config.PaymentHTTPServer, log *zap.Logger) *Gateway {
	return &Gateway{
		log:    log.Named("payment-gateway"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg,
		cb:     breaker.New(5, 30*time.Second),
	}
}

type processPaymentRequest struct {
	PatronID    string  `json:"patronId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type refundPaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

func (g *Gateway) ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (model.PaymentOutcome, error) {
	req := processPaymentRequest{
		PatronID:    patronID,
		Amount:      amount,
		Description: description,
	}
	var outcome model.PaymentOutcome
	err := g.cb.Call(func() error {
		return g.post(ctx, "/api/v1/payments", req, &outcome)
	})
	if err != nil {
		return model.PaymentOutcome{}, err
	}
	return outcome, nil
}

func (g *Gateway) RefundPayment(ctx context.Context, transactionID string, amount float64) (model.RefundOutcome, error) {
	req := refundPaymentRequest{
		TransactionID: transactionID,
		Amount:        amount,
	}
	var outcome model.RefundOutcome
	err := g.cb.Call(func() error {
		return g.post(ctx, "/api/v1/refunds", req, &outcome)
	})
	if err != nil {
		return model.RefundOutcome{}, err
	}
	return outcome, nil
}

func (g *Gateway) post(ctx context.Context, path string, in, out any) error {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("http://%s%s", net.JoinHostPort(g.cfg.Host, g.cfg.Port), path), b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warn("payment service", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return errors.Errorf("payment service replied %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
