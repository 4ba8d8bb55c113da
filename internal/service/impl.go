package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// RealClock — продовая реализация Clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// RandTokens — криптослучайный authenticationToken (32 hex-символа)
type RandTokens struct{}

func (RandTokens) AuthToken() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
