package services

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"luxelane/models"

	"go.uber.org/zap"
)

type CheckoutStep string

const (
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
)

var (
	ErrShippingIncomplete = errors.New("all shipping fields are required")
	ErrPaymentInvalid     = errors.New("payment details are invalid")
	ErrWrongStep          = errors.New("action not valid for the current checkout step")
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{2})$`)
	cvcPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// CheckoutFlow is the two-step shipping -> payment state machine. It is
// created on entering checkout and discarded on leaving; successful payment
// submission exits the flow entirely, there is no terminal state inside it.
type CheckoutFlow struct {
	mu       sync.Mutex
	step     CheckoutStep
	shipping models.ShippingInfo
	payment  models.PaymentInfo
	cart     *CartStore
	logger   *zap.Logger
}

func NewCheckoutFlow(cart *CartStore, logger *zap.Logger) *CheckoutFlow {
	return &CheckoutFlow{
		step:   StepShipping,
		cart:   cart,
		logger: logger,
	}
}

func (f *CheckoutFlow) Step() CheckoutStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *CheckoutFlow) Shipping() models.ShippingInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shipping
}

// SubmitShipping advances to the payment step. Submission is rejected and
// the flow stays on shipping if any required field is empty.
func (f *CheckoutFlow) SubmitShipping(info models.ShippingInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepShipping {
		return ErrWrongStep
	}
	if !info.Complete() {
		return ErrShippingIncomplete
	}
	f.shipping = info
	f.step = StepPayment
	f.logger.Debug("Checkout advanced to payment step")
	return nil
}

// UpdatePayment stores the current card fields and reports whether they
// satisfy the payment predicate. It is called on every change, mirroring the
// continuous validation of the form.
func (f *CheckoutFlow) UpdatePayment(info models.PaymentInfo) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payment = info
	return paymentValid(f.payment)
}

// PaymentValid re-evaluates the predicate on the stored fields.
func (f *CheckoutFlow) PaymentValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paymentValid(f.payment)
}

// Back steps from payment to shipping, preserving the shipping data for
// edit. At the shipping step it reports exited=true: the caller leaves the
// flow and discards it, cart contents untouched.
func (f *CheckoutFlow) Back() (exited bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step == StepPayment {
		f.step = StepShipping
		return false
	}
	return true
}

// SubmitPayment is the authoritative gate before order placement: it
// re-checks the predicate regardless of what the UI allowed. A nil return
// means the flow is complete and the caller must place the order and discard
// this flow.
func (f *CheckoutFlow) SubmitPayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepPayment {
		return ErrWrongStep
	}
	if !paymentValid(f.payment) {
		return ErrPaymentInvalid
	}
	return nil
}

// Summary computes the live order totals from the current cart state. The
// same helper backs order placement, so the summary and the placed order
// always match.
func (f *CheckoutFlow) Summary() models.Totals {
	return models.ComputeTotals(f.cart.State().Items)
}

// paymentValid holds when the card number has at least 12 characters after
// stripping whitespace, the expiry matches MM/YY (separator optional, month
// 01-12) and the cvc is exactly 3 or 4 digits.
func paymentValid(p models.PaymentInfo) bool {
	card := stripSpaces(p.CardNumber)
	return len(card) >= 12 &&
		expiryPattern.MatchString(p.ExpiryDate) &&
		cvcPattern.MatchString(p.CVC)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
