package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shawn910604/taipei-day-trip/config"
	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

// Gateway charges a tokenized payment instrument. Implemented by the TapPay
// client and stubbed in tests.
type Gateway interface {
	PayByPrime(ctx context.Context, order *domain.Order) error
}

// TapPayClient talks to the TapPay pay-by-prime endpoint. The HTTP client
// carries a bounded timeout; a payment is never retried, since there is no
// idempotency key and a retry risks a double charge.
type TapPayClient struct {
	baseURL    string
	partnerKey string
	merchantID string
	http       *http.Client
}

func NewTapPayClient(cfg config.PaymentConfig) *TapPayClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TapPayClient{
		baseURL:    cfg.BaseURL,
		partnerKey: cfg.PartnerKey,
		merchantID: cfg.MerchantID,
		http:       &http.Client{Timeout: timeout},
	}
}

type cardholder struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ZipCode     string `json:"zip_code"`
	Address     string `json:"address"`
	NationalID  string `json:"national_id"`
}

type payByPrimeRequest struct {
	Prime      string     `json:"prime"`
	PartnerKey string     `json:"partner_key"`
	MerchantID string     `json:"merchant_id"`
	Details    string     `json:"details"`
	Amount     int64      `json:"amount"`
	Cardholder cardholder `json:"cardholder"`
	Remember   bool       `json:"remember"`
}

type payByPrimeResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// PayByPrime exchanges the order's prime for a charge. Any non-2xx status,
// transport error, or gateway status other than 0 means the payment did not
// complete.
func (c *TapPayClient) PayByPrime(ctx context.Context, order *domain.Order) error {
	payload := payByPrimeRequest{
		Prime:      order.Prime,
		PartnerKey: c.partnerKey,
		MerchantID: c.merchantID,
		Details:    "Taipei day trip booking",
		Amount:     order.Price,
		Cardholder: cardholder{
			PhoneNumber: order.ContactPhone,
			Name:        order.ContactName,
			Email:       order.ContactEmail,
			Address:     order.Attraction.Address,
		},
		Remember: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode pay-by-prime request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tpc/payment/pay-by-prime", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build pay-by-prime request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.partnerKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var result payByPrimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode pay-by-prime response: %w", err)
	}
	if result.Status != 0 {
		return fmt.Errorf("payment declined: %s (status %d)", result.Msg, result.Status)
	}
	return nil
}

var _ Gateway = (*TapPayClient)(nil)
