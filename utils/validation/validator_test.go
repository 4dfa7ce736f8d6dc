package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProofFilename(t *testing.T) {
	t.Run("accepts whitelisted image types", func(t *testing.T) {
		for _, name := range []string{"receipt.jpg", "receipt.jpeg", "scan.png", "photo.webp", "UPPER.PNG"} {
			ok, msg := ValidateProofFilename(name)
			assert.True(t, ok, "expected %s to be accepted: %s", name, msg)
		}
	})

	t.Run("rejects gif and other types", func(t *testing.T) {
		for _, name := range []string{"anim.gif", "doc.pdf", "archive.zip", "script.exe"} {
			ok, msg := ValidateProofFilename(name)
			assert.False(t, ok, "expected %s to be rejected", name)
			assert.NotEmpty(t, msg)
		}
	})

	t.Run("rejects files without an extension", func(t *testing.T) {
		ok, msg := ValidateProofFilename("receipt")
		assert.False(t, ok)
		assert.Contains(t, msg, "no extension")
	})
}

func TestValidateAmountText(t *testing.T) {
	t.Run("blank is allowed", func(t *testing.T) {
		ok, _ := ValidateAmountText("")
		assert.True(t, ok)
	})

	t.Run("accepts integer and decimal amounts", func(t *testing.T) {
		for _, raw := range []string{"0", "100", "10.5", "0.01"} {
			ok, msg := ValidateAmountText(raw)
			assert.True(t, ok, "expected %s to be valid: %s", raw, msg)
		}
	})

	t.Run("rejects non-numeric text", func(t *testing.T) {
		ok, msg := ValidateAmountText("fifty")
		assert.False(t, ok)
		assert.Contains(t, msg, "not a valid amount")
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		ok, msg := ValidateAmountText("-5")
		assert.False(t, ok)
		assert.Contains(t, msg, "negative")
	})
}

func TestValidateUsername(t *testing.T) {
	t.Run("valid usernames", func(t *testing.T) {
		for _, name := range []string{"juan", "maria_cruz", "j.delacruz", "user-01"} {
			ok, msg := ValidateUsername(name)
			assert.True(t, ok, "expected %s to be valid: %s", name, msg)
		}
	})

	t.Run("too short", func(t *testing.T) {
		ok, _ := ValidateUsername("ab")
		assert.False(t, ok)
	})

	t.Run("illegal characters", func(t *testing.T) {
		ok, _ := ValidateUsername("user name!")
		assert.False(t, ok)
	})
}
