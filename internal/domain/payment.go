package domain

// PaymentEvent is a user action on the payment surface. Each qualifying
// event grants entitlement on its own; no correlation between events and no
// provider confirmation is awaited before the tier flips. See DESIGN.md for
// why that unconditional trust is kept.
type PaymentEvent interface {
	paymentEvent()
}

// PaymentAmountSubmitted is the submission of the payment-amount form.
type PaymentAmountSubmitted struct {
	Amount float64
}

// InstantPaymentRequested is the activation of the instant-payment (SBP)
// action.
type InstantPaymentRequested struct{}

// AutoRenewEnabled is the auto-renew opt-in toggle. It only produces an
// acknowledgment and never changes the tier by itself.
type AutoRenewEnabled struct{}

func (PaymentAmountSubmitted) paymentEvent() {}

func (InstantPaymentRequested) paymentEvent() {}

func (AutoRenewEnabled) paymentEvent() {}

// ApplyPayment applies a payment event to the session and reports whether
// the tier transitioned. Trial to Paid happens at most once; applying
// further events to a paid session is a no-op.
func (s *Session) ApplyPayment(ev PaymentEvent) bool {
	switch ev.(type) {
	case PaymentAmountSubmitted, InstantPaymentRequested:
		if s.Tier == TierPaid {
			return false
		}
		s.transitionToPaid()
		return true
	default:
		return false
	}
}

func (s *Session) transitionToPaid() {
	s.Tier = TierPaid
}
