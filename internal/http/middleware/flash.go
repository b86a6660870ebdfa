package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// flash message categories consumed by the landing page.
const (
	CategoryLoginErrors        = "login_errors"
	CategoryRegistrationErrors = "registration_errors"
)

// Flash records a transient, read-once message for the next rendered page.
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to save flash message")
	}
}

// ConsumeFlashes returns and discards the messages recorded under category.
// Saving the session persists the removal, so each message is seen once.
func ConsumeFlashes(c *gin.Context, category string) []string {
	session := sessions.Default(c)
	raw := session.Flashes(category)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to save session after reading flashes")
	}
	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
