package validation_test

import (
	"testing"

	"go-portfolio-site/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNameStripsAngleBracketsAndTrims(t *testing.T) {
	assert.Equal(t, "scriptAl/script", validation.SanitizeName("  <script>Al</script>  "))
	assert.Equal(t, "Al", validation.SanitizeName("Al"))
}

func TestSanitizeEmailTrimsAndLowercases(t *testing.T) {
	assert.Equal(t, "al@example.com", validation.SanitizeEmail("  AL@Example.COM "))
}

func TestSanitizeMessagePreservesInteriorWhitespace(t *testing.T) {
	in := "  line one\nline  two\n\nline three  "
	assert.Equal(t, "line one\nline  two\n\nline three", validation.SanitizeMessage(in))
}

func TestSanitizeIdempotent(t *testing.T) {
	name := validation.SanitizeName("<b>Al</b>")
	assert.Equal(t, name, validation.SanitizeName(name))

	msg := validation.SanitizeMessage("hello\nworld <tag>")
	assert.Equal(t, msg, validation.SanitizeMessage(msg))

	email := validation.SanitizeEmail("AL@EXAMPLE.COM")
	assert.Equal(t, email, validation.SanitizeEmail(email))
}
