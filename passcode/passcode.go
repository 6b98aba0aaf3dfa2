// Package passcode generates one time passcodes and hands them to a delivery channel
package passcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/VinukaThejana/go-utils/logger"
)

// Sender generates a code for the phone number and sends it
type Sender interface {
	Send(ctx context.Context, phone, purpose string) (code string, err error)
}

// Dispatcher delivers an issued code to the phone number
type Dispatcher interface {
	Dispatch(ctx context.Context, phone, purpose, code string) error
}

// Fixed always issues the same code, it is meant for demos and tests
type Fixed struct {
	Code string
}

// Send returns the fixed code without delivering it anywhere
func (f Fixed) Send(ctx context.Context, phone, purpose string) (string, error) {
	return f.Code, nil
}

// Random issues cryptographically random numeric codes
type Random struct {
	Digits     int
	Dispatcher Dispatcher
}

// Send generates a random code and dispatches it
func (r Random) Send(ctx context.Context, phone, purpose string) (string, error) {
	code, err := Generate(r.Digits)
	if err != nil {
		return "", err
	}

	if r.Dispatcher != nil {
		if err := r.Dispatcher.Dispatch(ctx, phone, purpose, code); err != nil {
			return "", fmt.Errorf("failed to dispatch the otp: %w", err)
		}
	}

	return code, nil
}

// Generate returns a random numeric code with the given number of digits, leading
// zeros included
func Generate(digits int) (string, error) {
	if digits <= 0 || digits > 18 {
		digits = 6
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}

// LogDispatcher records that a code was issued without revealing it, used until an
// SMS gateway is wired in
type LogDispatcher struct{}

// Dispatch logs the delivery
func (LogDispatcher) Dispatch(ctx context.Context, phone, purpose, code string) error {
	logger.Log(fmt.Sprintf("[ %s ] : OTP issued for %s", purpose, mask(phone)))
	return nil
}

func mask(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := make([]byte, len(phone))
	for i := range masked {
		if i < len(phone)-4 {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}
	return string(masked)
}
