package services

import (
	"testing"

	"luxelane/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completeShipping() models.ShippingInfo {
	return models.ShippingInfo{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "USA",
	}
}

func validPayment() models.PaymentInfo {
	return models.PaymentInfo{
		CardNumber: "4111111111111111",
		ExpiryDate: "09/27",
		CVC:        "123",
	}
}

func newTestFlow() *CheckoutFlow {
	return NewCheckoutFlow(NewCartStore(zap.NewNop()), zap.NewNop())
}

func TestCheckoutShippingStep(t *testing.T) {
	t.Run("Starts On Shipping", func(t *testing.T) {
		assert.Equal(t, StepShipping, newTestFlow().Step())
	})

	t.Run("Rejects Incomplete Shipping", func(t *testing.T) {
		flow := newTestFlow()
		info := completeShipping()
		info.City = ""

		err := flow.SubmitShipping(info)

		assert.ErrorIs(t, err, ErrShippingIncomplete)
		assert.Equal(t, StepShipping, flow.Step(), "state stays on shipping")
		assert.Equal(t, models.ShippingInfo{}, flow.Shipping(), "no side effect")
	})

	t.Run("Advances When Complete", func(t *testing.T) {
		flow := newTestFlow()

		err := flow.SubmitShipping(completeShipping())

		require.NoError(t, err)
		assert.Equal(t, StepPayment, flow.Step())
	})

	t.Run("Rejects Submit On Wrong Step", func(t *testing.T) {
		flow := newTestFlow()
		require.NoError(t, flow.SubmitShipping(completeShipping()))

		err := flow.SubmitShipping(completeShipping())

		assert.ErrorIs(t, err, ErrWrongStep)
	})
}

func TestCheckoutBack(t *testing.T) {
	t.Run("From Payment Preserves Shipping", func(t *testing.T) {
		flow := newTestFlow()
		require.NoError(t, flow.SubmitShipping(completeShipping()))

		exited := flow.Back()

		assert.False(t, exited)
		assert.Equal(t, StepShipping, flow.Step())
		assert.Equal(t, completeShipping(), flow.Shipping(), "entered data is kept for edit")
	})

	t.Run("From Shipping Exits The Flow", func(t *testing.T) {
		assert.True(t, newTestFlow().Back())
	})
}

func TestPaymentPredicate(t *testing.T) {
	cases := []struct {
		name    string
		payment models.PaymentInfo
		valid   bool
	}{
		{"Valid Card", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "09/27", CVC: "123"}, true},
		{"Valid With Spaces In Card", models.PaymentInfo{CardNumber: "4111 1111 1111 1111", ExpiryDate: "09/27", CVC: "123"}, true},
		{"Valid Without Expiry Separator", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "0927", CVC: "123"}, true},
		{"Valid Four Digit CVC", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "09/27", CVC: "1234"}, true},
		{"Card Too Short", models.PaymentInfo{CardNumber: "12345", ExpiryDate: "09/27", CVC: "123"}, false},
		{"Invalid Month", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "13/25", CVC: "123"}, false},
		{"Month Zero", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "00/25", CVC: "123"}, false},
		{"CVC Too Short", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "09/27", CVC: "12"}, false},
		{"CVC Too Long", models.PaymentInfo{CardNumber: "4111111111111111", ExpiryDate: "09/27", CVC: "12345"}, false},
		{"All Empty", models.PaymentInfo{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow := newTestFlow()
			assert.Equal(t, tc.valid, flow.UpdatePayment(tc.payment))
			assert.Equal(t, tc.valid, flow.PaymentValid())
		})
	}
}

func TestCheckoutSubmitPayment(t *testing.T) {
	t.Run("Rejected On Shipping Step", func(t *testing.T) {
		flow := newTestFlow()
		flow.UpdatePayment(validPayment())

		assert.ErrorIs(t, flow.SubmitPayment(), ErrWrongStep)
	})

	t.Run("Predicate Is Authoritative Regardless Of UI", func(t *testing.T) {
		flow := newTestFlow()
		require.NoError(t, flow.SubmitShipping(completeShipping()))
		flow.UpdatePayment(models.PaymentInfo{CardNumber: "12345", ExpiryDate: "09/27", CVC: "123"})

		err := flow.SubmitPayment()

		assert.ErrorIs(t, err, ErrPaymentInvalid)
		assert.Equal(t, StepPayment, flow.Step(), "state stays at payment")
	})

	t.Run("Accepted When Valid", func(t *testing.T) {
		flow := newTestFlow()
		require.NoError(t, flow.SubmitShipping(completeShipping()))
		flow.UpdatePayment(validPayment())

		assert.NoError(t, flow.SubmitPayment())
	})
}

func TestCheckoutSummaryTracksCart(t *testing.T) {
	cart := NewCartStore(zap.NewNop())
	flow := NewCheckoutFlow(cart, zap.NewNop())

	cart.AddItem(testProduct("p1", "20.00"))
	cart.AddItem(testProduct("p1", "20.00"))
	cart.AddItem(testProduct("p2", "9.99"))

	summary := flow.Summary()
	expected := models.ComputeTotals(cart.State().Items)

	assert.True(t, summary.Subtotal.Equal(expected.Subtotal))
	assert.True(t, summary.Tax.Equal(expected.Tax))
	assert.True(t, summary.Total.Equal(expected.Total))

	// summary is live, not a snapshot
	cart.UpdateQuantity("p2", 3)
	assert.False(t, flow.Summary().Subtotal.Equal(summary.Subtotal))
}
