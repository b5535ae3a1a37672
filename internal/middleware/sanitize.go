package middleware

import (
	"bytes"
	"encoding/json"
	"html"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeJSON strips markup from string fields of JSON request bodies on
// write methods. Nested objects are cleaned too; arrays are left alone so
// URL lists keep their query strings. Stored text stays unescaped; escaping
// is left to whoever renders it.
func SanitizeJSON() fiber.Handler {
	policy := bluemonday.StrictPolicy()

	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		default:
			return c.Next()
		}
		body := c.Body()
		if len(body) == 0 {
			return c.Next()
		}

		var payload map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
				dto.CodeValidation, "Malformed JSON body", nil,
			))
		}
		sanitizeMap(policy, payload)

		cleaned, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		c.Request().SetBody(cleaned)
		return c.Next()
	}
}

func sanitizeMap(policy *bluemonday.Policy, m map[string]interface{}) {
	for k, v := range m {
		switch val := v.(type) {
		case string:
			m[k] = html.UnescapeString(policy.Sanitize(val))
		case map[string]interface{}:
			sanitizeMap(policy, val)
		}
	}
}
