package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9', "OTP must be numeric, got %q", otp)
		}
	}
}
