package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/i18n"
)

type I18nHandler struct {
	DefaultLanguage string
}

func NewI18nHandler(defaultLanguage string) *I18nHandler {
	return &I18nHandler{DefaultLanguage: defaultLanguage}
}

// GetMessages serves the translation table for ?lang=, else Accept-Language.
func (h *I18nHandler) GetMessages(c *fiber.Ctx) error {
	lang := i18n.Negotiate(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage), h.DefaultLanguage)
	c.Set(fiber.HeaderContentLanguage, lang)
	return ok(c, fiber.Map{
		"lang":      lang,
		"supported": i18n.Supported,
		"messages":  i18n.Table(lang),
	})
}
