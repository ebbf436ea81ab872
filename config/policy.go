package config

import (
	"strconv"
	"strings"
	"time"
)

// RequireFullAmount controls whether a submitted payment must cover the
// booking total. On by default; set PAYMENT_REQUIRE_FULL_AMOUNT=false to
// record amounts as submitted without checking.
func RequireFullAmount() bool {
	v := strings.ToLower(envOrDefault("PAYMENT_REQUIRE_FULL_AMOUNT", "true"))
	return v != "false" && v != "0"
}

func JWTSecret() []byte {
	return []byte(envOrDefault("JWT_SECRET", "dev-secret-change-me"))
}

func JWTExpiry() time.Duration {
	min, err := strconv.Atoi(envOrDefault("JWT_EXPIRE_MIN", "60"))
	if err != nil || min <= 0 {
		min = 60
	}
	return time.Duration(min) * time.Minute
}
