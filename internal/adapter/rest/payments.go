package rest

import (
	"context"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// BalanceSummary fetches the wallet balances and recent transactions.
func (c *Client) BalanceSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	var out domain.BalanceSummary
	if err := c.get(ctx, "/api/advertiser/balance/summary/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestDeposit starts a mobile money deposit and returns the payment
// reference to poll.
func (c *Client) RequestDeposit(ctx context.Context, amount float64, mobile string, kind domain.PaymentKind) (*domain.DepositReceipt, error) {
	body := map[string]any{
		"amount":       amount,
		"mobile":       mobile,
		"payment_type": string(kind),
	}
	var out domain.DepositReceipt
	if err := c.post(ctx, "/api/payments/deposit/request/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DepositStatus polls one pending deposit by reference.
func (c *Client) DepositStatus(ctx context.Context, reference string) (*domain.DepositStatus, error) {
	var out domain.DepositStatus
	if err := c.get(ctx, "/api/payments/deposit/status/"+reference+"/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPaymentMethods fetches the saved payout destinations.
func (c *Client) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	if err := c.get(ctx, "/api/payment-methods/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentMethodChoices fetches the provider catalog for the add-method form.
func (c *Client) PaymentMethodChoices(ctx context.Context) ([]domain.PaymentMethodChoice, error) {
	var out []domain.PaymentMethodChoice
	if err := c.get(ctx, "/api/payment-method-choice/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPaymentMethod registers a new payout destination.
func (c *Client) AddPaymentMethod(ctx context.Context, p port.PaymentMethodPayload) error {
	return c.post(ctx, "/api/payment-methods/", p, nil)
}

// SetDefaultPaymentMethod marks the method as the payout default.
func (c *Client) SetDefaultPaymentMethod(ctx context.Context, id string) error {
	return c.patch(ctx, "/api/payment-methods/"+id+"/", map[string]any{"is_default": true}, nil)
}

// DeletePaymentMethod removes a payout destination.
func (c *Client) DeletePaymentMethod(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/payment-methods/"+id+"/")
}

// RequestWithdrawal asks for a payout to the given method and returns the
// backend's confirmation message.
func (c *Client) RequestWithdrawal(ctx context.Context, amount float64, methodID string) (string, error) {
	body := map[string]any{
		"amount":                 amount,
		"user_payment_method_id": methodID,
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/withdrawal/request/", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
