package validation_test

import (
	"strings"
	"testing"

	"go-portfolio-site/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidNameBoundaries(t *testing.T) {
	assert.False(t, validation.ValidName("A"))
	assert.True(t, validation.ValidName("Al"))
	assert.True(t, validation.ValidName(strings.Repeat("a", 100)))
	assert.False(t, validation.ValidName(strings.Repeat("a", 101)))
	// Length is measured after trimming
	assert.False(t, validation.ValidName("  A  "))
	assert.True(t, validation.ValidName("  Al  "))
	// Code points, not bytes
	assert.True(t, validation.ValidName("Åsa"))
}

func TestValidMessageBoundaries(t *testing.T) {
	assert.False(t, validation.ValidMessage(strings.Repeat("x", 9)))
	assert.True(t, validation.ValidMessage(strings.Repeat("x", 10)))
	assert.True(t, validation.ValidMessage(strings.Repeat("x", 2000)))
	assert.False(t, validation.ValidMessage(strings.Repeat("x", 2001)))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validation.ValidEmail("a@b.co"))
	assert.True(t, validation.ValidEmail("first.last@sub.example.com"))
	assert.False(t, validation.ValidEmail("no-at-sign.example.com"))
	assert.False(t, validation.ValidEmail("no-dot@example"))
	assert.False(t, validation.ValidEmail("white space@example.com"))
	assert.False(t, validation.ValidEmail("trailing@example.com "))
	assert.False(t, validation.ValidEmail("@example.com"))
	assert.False(t, validation.ValidEmail("a@.x"))
}

func TestCheckAllReportsEveryViolatedField(t *testing.T) {
	errs := validation.CheckAll("A", "not-an-email", "short")
	assert.Len(t, errs, 3)
	assert.Equal(t, validation.MsgNameLength, errs["name"])
	assert.Equal(t, validation.MsgEmailFormat, errs["email"])
	assert.Equal(t, validation.MsgMessageLength, errs["message"])
}

func TestCheckAllMissingShortCircuitsPerField(t *testing.T) {
	errs := validation.CheckAll("", "al@example.com", "")
	assert.Len(t, errs, 2)
	assert.Equal(t, validation.MsgMissingFields, errs["name"])
	assert.Equal(t, validation.MsgMissingFields, errs["message"])
	_, emailFlagged := errs["email"]
	assert.False(t, emailFlagged)
}

func TestCheckAllValidReturnsNil(t *testing.T) {
	assert.Nil(t, validation.CheckAll("Al", "al@example.com", "Hello there, this is long enough."))
}

func TestFirstFailureOrder(t *testing.T) {
	// Presence is checked before any per-field rule
	assert.Equal(t, validation.MsgMissingFields, validation.FirstFailure("", "bad", "short"))
	// Then name, email, message in that order
	assert.Equal(t, validation.MsgNameLength, validation.FirstFailure("A", "bad", "short"))
	assert.Equal(t, validation.MsgEmailFormat, validation.FirstFailure("Al", "bad", "short"))
	assert.Equal(t, validation.MsgMessageLength, validation.FirstFailure("Al", "al@example.com", "short"))
	assert.Empty(t, validation.FirstFailure("Al", "al@example.com", "Hello there, this is long enough."))
}

func TestFirstFailureDeterministic(t *testing.T) {
	first := validation.FirstFailure("A", "al@example.com", "Hello there, this is long enough.")
	second := validation.FirstFailure("A", "al@example.com", "Hello there, this is long enough.")
	assert.Equal(t, first, second)
}
