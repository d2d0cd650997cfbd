// Package echo implements the stateless reply backend for the chat relay.
// A reply is a pure function of (model, locale, message); the service keeps
// no state and has no side effects.
package echo

import (
	"fmt"

	"relaychat/internal/i18n"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Reply formats a deterministic reply embedding the model identifier and
// the localized echo prefix. Only ru and tr produce distinct prefixes;
// every other locale uses the default text.
func (s *Service) Reply(model, locale, message string) string {
	return fmt.Sprintf("(%s) %s: %s", model, i18n.T(locale, i18n.KeyEchoPrefix), message)
}
