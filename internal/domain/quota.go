package domain

import "strings"

// DefaultTrialWordLimit is the cumulative number of words a trial session
// may send before the gate starts denying candidates.
const DefaultTrialWordLimit = 50

// Decision is the outcome of a quota evaluation.
type Decision string

const (
	Admit Decision = "admit"
	Deny  Decision = "deny"
)

// QuotaPolicy decides whether a candidate message may be sent. It is pure
// configuration: evaluation never mutates the session.
type QuotaPolicy struct {
	TrialWordLimit int
}

// NewQuotaPolicy returns a policy with the default trial word limit.
func NewQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{TrialWordLimit: DefaultTrialWordLimit}
}

// Evaluate admits every candidate for paid sessions. For trial sessions a
// candidate is admitted iff the usage so far plus the candidate's own word
// count stays within the limit. The limit is a gate on the next candidate,
// not a ceiling on already-admitted usage.
func (p QuotaPolicy) Evaluate(s *Session, candidate string) Decision {
	if s.Tier == TierPaid {
		return Admit
	}
	if s.WordsUsed+WordCount(candidate) <= p.TrialWordLimit {
		return Admit
	}
	return Deny
}

// WordCount counts maximal whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
