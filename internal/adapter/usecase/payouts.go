package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Field keys for the add-payout-method form.
const (
	FieldMethodChoice  = "payment_method_choice"
	FieldAccountNumber = "account_number"
	FieldPhoneNumber   = "phone_number"
)

// Payouts manages the creator's payout destinations and withdrawal
// requests. A bank method takes an account number, a wallet method a
// phone number; which one the form requires follows the selected choice's
// category.
type Payouts struct {
	gw     port.Gateway
	tabs   *Tabs
	notify port.Notifier
	logger *slog.Logger

	mu      sync.Mutex
	open    bool
	choices []domain.PaymentMethodChoice
	choice  *domain.PaymentMethodChoice
	account string
	phone   string
	def     bool
	errs    domain.FieldErrors
}

// NewPayouts wires the payout flow.
func NewPayouts(gw port.Gateway, tabs *Tabs, notify port.Notifier, logger *slog.Logger) *Payouts {
	return &Payouts{gw: gw, tabs: tabs, notify: notify, logger: logger}
}

// OpenAddMethod loads the provider catalog and shows an empty form.
func (p *Payouts) OpenAddMethod(ctx context.Context) {
	choices, err := p.gw.PaymentMethodChoices(ctx)
	if err != nil {
		p.logger.Error("payment method choices load failed", "err", err)
		p.notify.Error("Unable to load payment method. Try again later.")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
	p.choices = choices
	p.choice = nil
	p.account = ""
	p.phone = ""
	p.def = false
	p.errs = domain.FieldErrors{}
}

// Close abandons the add-method form.
func (p *Payouts) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// IsOpen reports whether the add-method form is showing.
func (p *Payouts) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Choices returns the provider catalog loaded at open.
func (p *Payouts) Choices() []domain.PaymentMethodChoice {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.PaymentMethodChoice, len(p.choices))
	copy(out, p.choices)
	return out
}

// SelectChoice picks a provider by ID. Unknown IDs clear the selection.
func (p *Payouts) SelectChoice(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.choice = nil
	for i := range p.choices {
		if p.choices[i].ID == id {
			p.choice = &p.choices[i]
			return
		}
	}
}

// SetAccountNumber, SetPhoneNumber and SetDefault record form input.
func (p *Payouts) SetAccountNumber(v string) { p.mu.Lock(); p.account = strings.TrimSpace(v); p.mu.Unlock() }
func (p *Payouts) SetPhoneNumber(v string)   { p.mu.Lock(); p.phone = strings.TrimSpace(v); p.mu.Unlock() }
func (p *Payouts) SetDefault(v bool)         { p.mu.Lock(); p.def = v; p.mu.Unlock() }

// Errors returns the current inline validation errors.
func (p *Payouts) Errors() domain.FieldErrors {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := domain.FieldErrors{}
	out.Merge(p.errs)
	return out
}

// AddMethod validates the form and saves the payout destination. The
// payments tab reloads on success.
func (p *Payouts) AddMethod(ctx context.Context) {
	p.mu.Lock()
	choice, account, phone, def := p.choice, p.account, p.phone, p.def
	p.mu.Unlock()

	errs := domain.FieldErrors{}
	if choice == nil {
		errs.Add(FieldMethodChoice, "This field is required")
	} else if choice.Category == "bank" {
		switch {
		case account == "":
			errs.Add(FieldAccountNumber, "This field is required")
		case !domain.AccountNumberRe.MatchString(account):
			errs.Add(FieldAccountNumber, "Enter a valid account number")
		}
	} else {
		switch {
		case phone == "":
			errs.Add(FieldPhoneNumber, "This field is required")
		case !domain.PayoutPhoneRe.MatchString(phone):
			errs.Add(FieldPhoneNumber, "Enter a valid phone number")
		}
	}
	if !errs.Empty() {
		p.mu.Lock()
		p.errs = errs
		p.mu.Unlock()
		return
	}

	payload := port.PaymentMethodPayload{ChoiceID: choice.ID, IsDefault: def}
	if choice.Category == "bank" {
		payload.AccountNumber = account
	} else {
		payload.PhoneNumber = phone
	}
	if err := p.gw.AddPaymentMethod(ctx, payload); err != nil {
		p.logger.Error("payment method add failed", "choice", choice.ID, "err", err)
		p.routeAddError(err)
		return
	}

	p.mu.Lock()
	p.open = false
	p.errs = domain.FieldErrors{}
	p.mu.Unlock()
	p.notify.Success("Payment method added successfully!")
	p.tabs.RefreshCurrentTab(ctx)
}

// routeAddError puts backend field messages inline and also raises the
// first one as a toast, matching the form's double reporting.
func (p *Payouts) routeAddError(err error) {
	apiErr, ok := port.ParseAPIError(err)
	if !ok || len(apiErr.Fields) == 0 {
		p.notify.Error("An error occurred. Try again.")
		return
	}
	errs := domain.FieldErrors{}
	var first string
	for field, msgs := range apiErr.Fields {
		if len(msgs) > 0 {
			errs.Add(field, msgs[0])
			if first == "" {
				first = msgs[0]
			}
		}
	}
	p.mu.Lock()
	p.errs = errs
	p.mu.Unlock()
	if first != "" {
		p.notify.Error(first)
	}
}

// MakeDefault marks the method as the payout default.
func (p *Payouts) MakeDefault(ctx context.Context, id string) {
	if err := p.gw.SetDefaultPaymentMethod(ctx, id); err != nil {
		p.logger.Error("set default payment method failed", "method", id, "err", err)
		msg := defaultFailureMessage(err)
		p.notify.Error(msg)
		return
	}
	p.notify.Success("Payment method made default successfully.")
	p.tabs.RefreshCurrentTab(ctx)
}

func defaultFailureMessage(err error) string {
	if apiErr, ok := port.ParseAPIError(err); ok {
		if msgs := apiErr.Fields["is_default"]; len(msgs) > 0 {
			return msgs[0]
		}
		if len(apiErr.NonField) > 0 {
			return apiErr.NonField[0]
		}
		if apiErr.ErrorMsg != "" {
			return apiErr.ErrorMsg
		}
	}
	return "Failed to make default."
}

// DeleteMethod removes a payout destination.
func (p *Payouts) DeleteMethod(ctx context.Context, id string) {
	if err := p.gw.DeletePaymentMethod(ctx, id); err != nil {
		p.logger.Error("payment method delete failed", "method", id, "err", err)
		msg := err.Error()
		if apiErr, ok := port.ParseAPIError(err); ok && apiErr.ErrorMsg != "" {
			msg = apiErr.ErrorMsg
		}
		if msg == "" {
			msg = "Failed to remove payment method."
		}
		p.notify.Error(msg)
		return
	}
	p.notify.Success("Payment method removed successfully.")
	p.tabs.RefreshCurrentTab(ctx)
}

// Withdraw requests a payout of amountStr against the available balance.
// The payout lands on the default verified method; without one the request
// is rejected before reaching the backend.
func (p *Payouts) Withdraw(ctx context.Context, amountStr string, available float64, methods []domain.PaymentMethod) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil || amount <= 0 || amount > available {
		p.notify.Error("Please enter a valid amount")
		return
	}
	if amount < domain.MinWithdrawal {
		p.notify.Error("Minimum withdrawal amount is ETB 100")
		return
	}

	var methodID string
	for _, m := range methods {
		if m.IsDefault && m.Verified() {
			methodID = m.ID
			break
		}
	}
	if methodID == "" {
		p.notify.Error("No verified payment method found. Please add a payment method first.")
		return
	}

	msg, err := p.gw.RequestWithdrawal(ctx, amount, methodID)
	if err != nil {
		p.logger.Error("withdrawal request failed", "amount", amount, "err", err)
		text := err.Error()
		if apiErr, ok := port.ParseAPIError(err); ok && apiErr.ErrorMsg != "" {
			text = apiErr.ErrorMsg
		}
		if text == "" {
			text = "Failed to process withdrawal request."
		}
		p.notify.Error(text)
		return
	}
	if msg == "" {
		msg = "Withdrawal request submitted successfully!"
	}
	p.notify.Success(msg)
	p.tabs.RefreshCurrentTab(ctx)
}
