package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/VinukaThejana/immerzo/models"
	"github.com/VinukaThejana/immerzo/passcode"
	"github.com/VinukaThejana/immerzo/store"
)

// DefaultOTPTTL is how long an issued OTP stays valid
const DefaultOTPTTL = 10 * time.Minute

// OTP contains the OTP ledger operations
type OTP struct {
	Store  store.Store
	Sender passcode.Sender
	TTL    time.Duration
	Now    func() time.Time
}

func (o *OTP) now() time.Time {
	if o.Now != nil {
		return o.Now().UTC()
	}
	return time.Now().UTC()
}

func (o *OTP) ttl() time.Duration {
	if o.TTL > 0 {
		return o.TTL
	}
	return DefaultOTPTTL
}

// Start issues a new OTP for the phone number and purpose and returns the issued code,
// earlier codes for the same phone number and purpose are left untouched
func (o *OTP) Start(ctx context.Context, phone, purpose string) (string, error) {
	code, err := o.Sender.Send(ctx, phone, purpose)
	if err != nil {
		return "", err
	}

	_, err = o.Store.CreateDocument(ctx, enums.OTPRequestCollection, models.OTPRequest{
		Phone:     phone,
		Purpose:   purpose,
		Code:      code,
		Verified:  false,
		ExpiresAt: o.now().Add(o.ttl()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store the otp request: %w", err)
	}

	return code, nil
}

// Latest returns the most recently issued OTP for the phone number and purpose
func (o *OTP) Latest(ctx context.Context, phone, purpose string) (*models.OTPRequest, error) {
	var recs []models.OTPRequest
	err := o.Store.GetDocuments(ctx, enums.OTPRequestCollection, store.Query{
		Filter: store.Filter{"phone": phone, "purpose": purpose},
		Newest: true,
		Limit:  1,
	}, &recs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the otp request: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.ErrOTPNotFound
	}

	return &recs[0], nil
}

// Verify checks the code against the most recently issued OTP for the phone number and
// purpose and marks it as verified, verifying an already verified code succeeds again
func (o *OTP) Verify(ctx context.Context, phone, purpose, code string) error {
	rec, err := o.Latest(ctx, phone, purpose)
	if err != nil {
		return err
	}

	if rec.Code != code {
		return errors.ErrInvalidOTP
	}
	if rec.State(o.now()) == models.OTPExpired {
		return errors.ErrOTPExpired
	}

	err = o.Store.UpdateDocument(ctx, enums.OTPRequestCollection, rec.ID, map[string]interface{}{
		"verified": true,
	})
	if err != nil {
		return fmt.Errorf("failed to mark the otp as verified: %w", err)
	}

	return nil
}
