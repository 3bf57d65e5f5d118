package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/config/configs"
	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func newTestTopUp(t *testing.T) (*TopUp, *mocks.MockGateway, *mocks.MockNotifier) {
	gw := mocks.NewMockGateway(t)
	notifier := mocks.NewMockNotifier(t)
	cfg := configs.Topup{PollInterval: time.Millisecond, PollAttempts: 10}
	return NewTopUp(gw, notifier, testLogger(), cfg), gw, notifier
}

// TestTopUpOpenPrefillsShortfall ensures the dialog opens on the entry step
// with the missing amount filled in.
func TestTopUpOpenPrefillsShortfall(t *testing.T) {
	f, _, _ := newTestTopUp(t)

	f.Open(249.5, nil)
	if f.State() != TopUpEntry {
		t.Fatalf("expected entry state, got %d", f.State())
	}
	amount, mobile, kind := f.Form()
	if amount != "249.50" || mobile != "" || kind != domain.PayTelebirr {
		t.Fatalf("unexpected form: %q %q %q", amount, mobile, kind)
	}

	f.Cancel()
	if f.State() != TopUpClosed {
		t.Fatalf("expected closed after cancel")
	}
}

// TestTopUpCanProceed checks the entry validation per rail.
func TestTopUpCanProceed(t *testing.T) {
	f, _, _ := newTestTopUp(t)
	f.Open(100, nil)

	if f.CanProceed() {
		t.Fatalf("empty mobile must not proceed")
	}
	f.SetMobile("0911234567")
	if !f.CanProceed() {
		t.Fatalf("valid Ethiopian number should proceed")
	}
	f.SetAmount("0")
	if f.CanProceed() {
		t.Fatalf("amount below minimum must not proceed")
	}
	f.SetAmount("50")

	// M-Pesa uses the Kenyan numbering plan
	f.SetKind(domain.PayMpesa)
	if f.CanProceed() {
		t.Fatalf("Ethiopian number must not pass for M-Pesa")
	}
	f.SetMobile("+254712345678")
	if !f.CanProceed() {
		t.Fatalf("valid Safaricom number should proceed")
	}
}

// TestProceedRejectsInvalidInput ensures nothing is sent for bad input.
func TestProceedRejectsInvalidInput(t *testing.T) {
	f, _, notifier := newTestTopUp(t)
	f.Open(100, nil)

	f.SetAmount("abc")
	notifier.EXPECT().Error("Please enter an amount greater than zero.").Return().Once()
	f.Proceed(context.Background())

	f.SetAmount("100")
	f.SetMobile("12345")
	notifier.EXPECT().Error("Please enter a valid mobile number (" + domain.PayTelebirr.MobileHint() + ").").Return().Once()
	f.Proceed(context.Background())

	if f.State() != TopUpEntry {
		t.Fatalf("dialog must stay on entry after rejected input")
	}
}

// TestProceedPollsToSuccess drives a deposit that settles on the third
// status check.
func TestProceedPollsToSuccess(t *testing.T) {
	f, gw, notifier := newTestTopUp(t)
	f.Open(100, nil)
	f.SetMobile("0911234567")

	gw.EXPECT().RequestDeposit(mock.Anything, 100.0, "0911234567", domain.PayTelebirr).
		Return(&domain.DepositReceipt{Reference: "DEP-1"}, nil).Once()

	var polls int32
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-1").RunAndReturn(
		func(context.Context, string) (*domain.DepositStatus, error) {
			if atomic.AddInt32(&polls, 1) < 3 {
				return &domain.DepositStatus{Status: "pending"}, nil
			}
			return &domain.DepositStatus{Status: "success", Credited: true, Message: "Payment completed successfully! Your balance has been updated."}, nil
		})
	notifier.EXPECT().Success("Payment completed successfully! Your balance has been updated.").Return().Once()

	f.Proceed(context.Background())

	if got := atomic.LoadInt32(&polls); got != 3 {
		t.Fatalf("expected 3 polls, got %d", got)
	}
	if f.State() != TopUpResolved {
		t.Fatalf("expected resolved state, got %d", f.State())
	}
	if ref, instruction := f.Receipt(); ref != "DEP-1" || instruction != domain.PayTelebirr.Instruction() {
		t.Fatalf("unexpected receipt: %q %q", ref, instruction)
	}
}

// TestProceedTimesOutAfterAttempts ensures polling stops at the configured
// attempt count and reports the payment as still processing.
func TestProceedTimesOutAfterAttempts(t *testing.T) {
	f, gw, notifier := newTestTopUp(t)
	f.Open(100, nil)
	f.SetMobile("0911234567")

	gw.EXPECT().RequestDeposit(mock.Anything, 100.0, "0911234567", domain.PayTelebirr).
		Return(&domain.DepositReceipt{Reference: "DEP-2"}, nil).Once()

	var polls int32
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-2").RunAndReturn(
		func(context.Context, string) (*domain.DepositStatus, error) {
			atomic.AddInt32(&polls, 1)
			return &domain.DepositStatus{Status: "pending"}, nil
		})
	notifier.EXPECT().Error("Payment is taking longer than expected. Please complete the USSD prompt or check your balance.").Return().Once()

	f.Proceed(context.Background())

	if got := atomic.LoadInt32(&polls); got != 10 {
		t.Fatalf("expected exactly 10 polls, got %d", got)
	}
	if f.State() != TopUpResolved {
		t.Fatalf("expected resolved state, got %d", f.State())
	}
}

// TestProceedFailedPayment ensures a failed status is terminal.
func TestProceedFailedPayment(t *testing.T) {
	f, gw, notifier := newTestTopUp(t)
	f.Open(100, nil)
	f.SetMobile("0911234567")

	gw.EXPECT().RequestDeposit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DepositReceipt{Reference: "DEP-3"}, nil).Once()
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-3").
		Return(&domain.DepositStatus{Status: "failed"}, nil).Once()
	notifier.EXPECT().Error("Payment failed. Please try again or contact support.").Return().Once()

	f.Proceed(context.Background())

	if f.State() != TopUpResolved {
		t.Fatalf("expected resolved state, got %d", f.State())
	}
}

// TestProceedSuccessWithoutCredit ensures a settled payment whose crediting
// failed is surfaced as an error, not a success.
func TestProceedSuccessWithoutCredit(t *testing.T) {
	f, gw, notifier := newTestTopUp(t)
	f.Open(100, nil)
	f.SetMobile("0911234567")

	gw.EXPECT().RequestDeposit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DepositReceipt{Reference: "DEP-4"}, nil).Once()
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-4").
		Return(&domain.DepositStatus{Status: "success", Credited: false}, nil).Once()
	notifier.EXPECT().Error("Payment was successful, but balance update failed. Please contact support.").Return().Once()

	f.Proceed(context.Background())
}

// TestConfirmResumesPendingAction ensures confirmation re-reads the balance,
// closes the dialog and hands the amount back to the waiting action.
func TestConfirmResumesPendingAction(t *testing.T) {
	f, gw, notifier := newTestTopUp(t)

	var resumedWith float64
	f.Open(300, func(_ context.Context, amount float64) { resumedWith = amount })
	f.SetMobile("0911234567")

	gw.EXPECT().RequestDeposit(mock.Anything, 300.0, "0911234567", domain.PayTelebirr).
		Return(&domain.DepositReceipt{Reference: "DEP-5"}, nil).Once()
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-5").
		Return(&domain.DepositStatus{Status: "success", Credited: true, Message: "Payment completed successfully! Your balance has been updated."}, nil).Once()
	notifier.EXPECT().Success("Payment completed successfully! Your balance has been updated.").Return().Once()
	f.Proceed(context.Background())

	gw.EXPECT().BalanceSummary(mock.Anything).
		Return(&domain.BalanceSummary{Available: 1300}, nil).Once()
	notifier.EXPECT().Success("Your current balance is ETB 1300.00.").Return().Once()

	f.Confirm(context.Background())

	if f.State() != TopUpClosed {
		t.Fatalf("expected closed after confirm, got %d", f.State())
	}
	if resumedWith != 300 {
		t.Fatalf("expected resume with 300.00, got %v", resumedWith)
	}
}

// TestConfirmIgnoredBeforeResolved ensures a confirm on the entry or
// polling step neither closes the dialog nor fires the pending action.
func TestConfirmIgnoredBeforeResolved(t *testing.T) {
	f, _, _ := newTestTopUp(t)

	resumed := false
	f.Open(300, func(context.Context, float64) { resumed = true })
	f.SetMobile("0911234567")

	f.Confirm(context.Background())

	if f.State() != TopUpEntry {
		t.Fatalf("expected dialog to stay on entry, got %d", f.State())
	}
	if resumed {
		t.Fatalf("pending action must not run before the deposit resolves")
	}
}
