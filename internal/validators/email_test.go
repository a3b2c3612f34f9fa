package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.co",
		"x@y.io",
	}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"alice@",
		"alice@example",
		"alice@.com",
		"alice@example.",
		"alice smith@example.com",
		"alice@exam ple.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}
