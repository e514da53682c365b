// Package greeter builds localized greeting messages.
package greeter

import (
	"context"
	"strings"

	"github.com/MichailMastanov/localization-example/pkg/i18n"
)

// Service produces greetings in the locale carried by the request context.
type Service struct {
	translator *i18n.Translator
}

// New creates a greeter backed by the given translator.
func New(translator *i18n.Translator) *Service {
	return &Service{translator: translator}
}

// Greet returns a localized greeting for the given name. A blank name gets
// the anonymous variant.
func (s *Service) Greet(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.translator.Tc(ctx, "greetingNoName")
	}
	return s.translator.Tc(ctx, "greeting", name)
}
