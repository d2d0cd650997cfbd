package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"relaychat/internal/domain"
	"relaychat/internal/i18n"
)

// Chat drives one session through the quota-gate protocol: evaluate, debit,
// dispatch, append. The mutex is held for the full round trip, not just a
// display flag, so a second send attempted while one is pending is rejected
// with domain.ErrSendInFlight instead of racing the first.
type Chat struct {
	mu         sync.Mutex
	session    *domain.Session
	policy     domain.QuotaPolicy
	dispatcher *Dispatcher

	trialModel string
	paidModel  string
}

func NewChat(session *domain.Session, dispatcher *Dispatcher, trialModel, paidModel string) *Chat {
	return &Chat{
		session:    session,
		policy:     domain.NewQuotaPolicy(),
		dispatcher: dispatcher,
		trialModel: trialModel,
		paidModel:  paidModel,
	}
}

// Send runs the full round trip for one user message. A quota denial mutates
// nothing and returns domain.ErrQuotaExceeded; the caller keeps the text.
// A dispatch failure is recovered locally: the word debit stands, and a
// system message embedding the failure description is appended instead of a
// reply.
func (c *Chat) Send(ctx context.Context, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	if !c.mu.TryLock() {
		return domain.Message{}, domain.ErrSendInFlight
	}
	defer c.mu.Unlock()

	if c.policy.Evaluate(c.session, text) == domain.Deny {
		return domain.Message{}, domain.ErrQuotaExceeded
	}

	c.session.Debit(domain.WordCount(text))
	c.session.Append(domain.RoleUser, text)

	locale := c.session.Locale
	model := c.session.Model(c.trialModel, c.paidModel)

	reply, err := c.dispatcher.Send(ctx, locale, model, text)
	if err != nil {
		msg := c.session.Append(domain.RoleSystem,
			fmt.Sprintf("%s: %v", i18n.T(locale, i18n.KeyErrorPrefix), err))
		return msg, nil
	}
	return c.session.Append(domain.RoleAssistant, reply), nil
}

// PayAmount handles the payment-amount form. Entitlement is granted on the
// user action itself: the tier flips before the mock backend call resolves,
// and a failed call does not take it back.
func (c *Chat) PayAmount(ctx context.Context, amount float64) (string, error) {
	c.mu.Lock()
	c.session.ApplyPayment(domain.PaymentAmountSubmitted{Amount: amount})
	locale := c.session.Locale
	c.mu.Unlock()

	return c.dispatcher.PayAmount(ctx, locale, amount)
}

// PayInstant handles the instant-payment (SBP) action. Like PayAmount, the
// transition is immediate and unconditional.
func (c *Chat) PayInstant(ctx context.Context) (string, error) {
	c.mu.Lock()
	c.session.ApplyPayment(domain.InstantPaymentRequested{})
	c.mu.Unlock()

	return c.dispatcher.CreateCheckout(ctx)
}

// EnableAutoRenew applies the auto-renew opt-in. It never changes the tier;
// the only effect is a localized acknowledgment.
func (c *Chat) EnableAutoRenew() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ApplyPayment(domain.AutoRenewEnabled{})
	return i18n.T(c.session.Locale, i18n.KeyAutoRenewOn)
}

// SetLocale switches the session locale, normalizing the given tag.
func (c *Chat) SetLocale(code string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.SetLocale(i18n.Normalize(code))
	return c.session.Locale
}

// Locale returns the session's current locale.
func (c *Chat) Locale() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Locale
}

// Tier returns the session's current entitlement tier.
func (c *Chat) Tier() domain.Tier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Tier
}

// WordsUsed returns the cumulative admitted word count.
func (c *Chat) WordsUsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.WordsUsed
}

// Messages returns a copy of the session log.
func (c *Chat) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Messages()
}
