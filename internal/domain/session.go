package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Tier enumerates entitlement tiers. The upgrade is monotonic: once a
// session reaches TierPaid it never reverts.
type Tier string

const (
	TierTrial Tier = "trial"
	TierPaid  Tier = "paid"
)

// Message is one entry of a session's append-only log.
type Message struct {
	ID        int64     `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session tracks locale, entitlement tier, cumulative trial word usage and
// the message history for one user. It is owned by a single caller and lives
// only as long as the process; there is no durable store behind it.
//
// All mutation goes through named operations (Debit, Append, ApplyPayment,
// SetLocale). The message log is append-only: no removal, no reordering.
type Session struct {
	Locale    string
	Tier      Tier
	WordsUsed int

	messages []Message
	nextID   int64
}

// NewSession creates a trial-tier session with an empty log.
func NewSession(locale string) *Session {
	return &Session{
		Locale: locale,
		Tier:   TierTrial,
		nextID: 1,
	}
}

// Append assigns the next strictly increasing message ID and adds the
// message to the tail of the log.
func (s *Session) Append(role Role, content string) Message {
	msg := Message{
		ID:        s.nextID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the log in insertion order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Debit records admitted word usage. It is called only for messages that
// passed the quota gate and is never rolled back, even when the dispatch
// that follows it fails.
func (s *Session) Debit(words int) {
	if words < 0 {
		return
	}
	s.WordsUsed += words
}

// SetLocale switches the session's display locale.
func (s *Session) SetLocale(locale string) {
	s.Locale = locale
}

// Model returns the backend model identifier the session dispatches with,
// given the configured trial and paid identifiers.
func (s *Session) Model(trialModel, paidModel string) string {
	if s.Tier == TierPaid {
		return paidModel
	}
	return trialModel
}
