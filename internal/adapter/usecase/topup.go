package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"sonic-miniapp/internal/config/configs"
	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// TopUpState tracks where the deposit dialog is.
type TopUpState int

const (
	TopUpClosed TopUpState = iota
	// TopUpEntry: the user enters amount, mobile number and rail.
	TopUpEntry
	// TopUpPolling: the deposit was initiated and its status is polled.
	TopUpPolling
	// TopUpResolved: polling finished (any terminal outcome). The dialog
	// stays open for the explicit confirm step.
	TopUpResolved
)

// TopUp drives the balance top-up dialog. It opens when a submission needs
// more budget than the wallet holds, pre-filled with the shortfall. After
// the deposit settles the user confirms explicitly; confirmation re-reads
// the balance and then resumes whatever action was waiting on the money.
type TopUp struct {
	gw       port.Gateway
	notify   port.Notifier
	logger   *slog.Logger
	interval time.Duration
	attempts int

	mu          sync.Mutex
	state       TopUpState
	amount      string
	mobile      string
	kind        domain.PaymentKind
	reference   string
	instruction string
	onConfirmed func(ctx context.Context, amount float64)
}

// NewTopUp creates a closed top-up flow using the configured poll cadence.
func NewTopUp(gw port.Gateway, notify port.Notifier, logger *slog.Logger, cfg configs.Topup) *TopUp {
	return &TopUp{
		gw:       gw,
		notify:   notify,
		logger:   logger,
		interval: cfg.PollInterval,
		attempts: cfg.PollAttempts,
		kind:     domain.PayTelebirr,
	}
}

// Open shows the dialog pre-filled with the shortfall. resume is invoked
// with the topped-up amount after the user confirms the deposit settled.
func (f *TopUp) Open(shortfall float64, resume func(ctx context.Context, amount float64)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = TopUpEntry
	f.amount = fmt.Sprintf("%.2f", shortfall)
	f.mobile = ""
	f.kind = domain.PayTelebirr
	f.reference = ""
	f.instruction = ""
	f.onConfirmed = resume
}

// Cancel closes the dialog without resuming anything.
func (f *TopUp) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = TopUpClosed
	f.onConfirmed = nil
}

// State returns the dialog state.
func (f *TopUp) State() TopUpState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetAmount, SetMobile and SetKind record form input.
func (f *TopUp) SetAmount(v string) { f.mu.Lock(); f.amount = v; f.mu.Unlock() }
func (f *TopUp) SetMobile(v string) { f.mu.Lock(); f.mobile = strings.TrimSpace(v); f.mu.Unlock() }
func (f *TopUp) SetKind(k domain.PaymentKind) { f.mu.Lock(); f.kind = k; f.mu.Unlock() }

// Form returns the current amount, mobile and rail.
func (f *TopUp) Form() (amount, mobile string, kind domain.PaymentKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.amount, f.mobile, f.kind
}

// Receipt returns the payment reference and instruction once a deposit
// was initiated.
func (f *TopUp) Receipt() (reference, instruction string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reference, f.instruction
}

// CanProceed reports whether the entry form is valid: an amount of at
// least the minimum and a mobile number matching the selected rail.
func (f *TopUp) CanProceed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.amount), 64)
	return err == nil && amount >= domain.MinDeposit && f.kind.ValidMobile(f.mobile)
}

// Proceed validates the form, initiates the deposit and polls it to a
// terminal state. It blocks until polling finishes, so callers run it off
// the UI loop.
func (f *TopUp) Proceed(ctx context.Context) {
	f.mu.Lock()
	amountStr, mobile, kind := f.amount, f.mobile, f.kind
	f.mu.Unlock()

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil || amount < domain.MinDeposit {
		f.notify.Error("Please enter an amount greater than zero.")
		return
	}
	if !kind.ValidMobile(mobile) {
		f.notify.Error("Please enter a valid mobile number (" + kind.MobileHint() + ").")
		return
	}

	receipt, err := f.gw.RequestDeposit(ctx, amount, mobile, kind)
	if err != nil {
		f.logger.Error("deposit request failed", "err", err)
		msg := err.Error()
		if msg == "" {
			msg = "Sorry, we couldn't start your payment. Please check your details and try again."
		}
		f.notify.Error(msg)
		return
	}

	instruction := receipt.Instruction
	if instruction == "" {
		instruction = kind.Instruction()
	}
	f.mu.Lock()
	f.reference = receipt.Reference
	f.instruction = instruction
	f.state = TopUpPolling
	f.mu.Unlock()

	f.poll(ctx, receipt.Reference)
}

// poll checks the deposit status up to the configured number of attempts.
// Success, failure and a status-check error are all terminal; a network
// error is not retried. Exhausting the attempts reports the payment as
// still processing.
func (f *TopUp) poll(ctx context.Context, reference string) {
	defer func() {
		f.mu.Lock()
		f.state = TopUpResolved
		f.mu.Unlock()
	}()

	for attempt := 0; attempt < f.attempts; attempt++ {
		status, err := f.gw.DepositStatus(ctx, reference)
		if err != nil {
			f.logger.Error("deposit status check failed", "reference", reference, "err", err)
			f.notify.Error("Unable to check payment status. Please check your balance or contact support.")
			return
		}
		switch status.Status {
		case "success":
			if status.Credited {
				f.notify.Success(status.Message)
			} else {
				f.notify.Error("Payment was successful, but balance update failed. Please contact support.")
			}
			return
		case "failed":
			f.notify.Error("Payment failed. Please try again or contact support.")
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(f.interval):
		}
	}
	f.notify.Error("Payment is taking longer than expected. Please complete the USSD prompt or check your balance.")
}

// Confirm is the explicit acknowledgement after polling resolves. It
// re-reads the balance, closes the dialog and resumes the pending action
// with the topped-up amount. Calls in any other state are ignored.
func (f *TopUp) Confirm(ctx context.Context) {
	f.mu.Lock()
	if f.state != TopUpResolved {
		f.mu.Unlock()
		return
	}
	amountStr := f.amount
	resume := f.onConfirmed
	f.mu.Unlock()

	balance, err := f.gw.BalanceSummary(ctx)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "We couldn't fetch your balance. Please try again or contact support."
		}
		f.notify.Error(msg)
		return
	}
	f.notify.Success(fmt.Sprintf("Your current balance is ETB %.2f.", balance.Available))

	f.mu.Lock()
	f.state = TopUpClosed
	f.onConfirmed = nil
	f.mu.Unlock()

	if resume != nil {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		resume(ctx, amount)
	}
}
