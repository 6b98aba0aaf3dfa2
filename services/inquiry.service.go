package services

import (
	"context"
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/VinukaThejana/immerzo/models"
	"github.com/VinukaThejana/immerzo/schemas"
	"github.com/VinukaThejana/immerzo/store"
	"github.com/VinukaThejana/immerzo/upload"
)

// Lead is a summary of a stored inquiry that is handed to the notifier
type Lead struct {
	Kind    string
	ID      string
	Name    string
	Email   string
	Phone   string
	Details map[string]string
}

// Notifier is told about every stored inquiry
type Notifier interface {
	Notify(ctx context.Context, lead Lead) error
}

// File is an uploaded file read fully into memory
type File struct {
	Name string
	Data []byte
}

// Inquiry contains the inquiry submission operations
type Inquiry struct {
	Store    store.Store
	OTP      *OTP
	Uploads  upload.Storage
	Notifier Notifier

	// RequireFranchiseOTP rejects franchise inquiries submitted without an otp code
	RequireFranchiseOTP bool
	// RequireMallOTP rejects mall inquiries submitted without an otp code
	RequireMallOTP bool
}

// gate verifies the otp code when one is given and reports wether the inquiry was verified
func (i *Inquiry) gate(ctx context.Context, phone, purpose string, code *string, required bool) (bool, error) {
	if code == nil || *code == "" {
		if required {
			return false, errors.ErrOTPRequired
		}
		return false, nil
	}

	if err := i.OTP.Verify(ctx, phone, purpose, *code); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitFranchise verifies the optional otp code and stores the franchise inquiry
func (i *Inquiry) SubmitFranchise(ctx context.Context, payload schemas.FranchisePayload) (string, error) {
	verified, err := i.gate(ctx, payload.Phone, enums.Franchise, payload.OTPCode, i.RequireFranchiseOTP)
	if err != nil {
		return "", err
	}

	inquiry := payload.Inquiry(verified)
	id, err := i.Store.CreateDocument(ctx, enums.FranchiseInquiryCollection, inquiry)
	if err != nil {
		return "", fmt.Errorf("failed to store the franchise inquiry: %w", err)
	}

	i.notify(ctx, Lead{
		Kind:  enums.Franchise,
		ID:    id,
		Name:  inquiry.FullName,
		Email: inquiry.Email,
		Phone: inquiry.Phone,
		Details: map[string]string{
			"Investment capacity (lakhs)": fmt.Sprintf("%g", inquiry.InvestmentCapacityLakhs),
			"Preferred cities":            inquiry.PreferredCities,
			"City tier":                   inquiry.CityTier,
		},
	})

	return id, nil
}

// SubmitMall verifies the optional otp code, saves the optional floorplan and then stores
// the mall inquiry
func (i *Inquiry) SubmitMall(ctx context.Context, payload schemas.MallPayload, file *File) (string, *models.Floorplan, error) {
	verified, err := i.gate(ctx, payload.Phone, enums.Mall, payload.OTPCode, i.RequireMallOTP)
	if err != nil {
		return "", nil, err
	}

	var floorplan *models.Floorplan
	if file != nil {
		floorplan, err = i.Uploads.Save(ctx, file.Name, file.Data)
		if err != nil {
			return "", nil, fmt.Errorf("failed to save the floorplan: %w", err)
		}
	}

	inquiry := payload.Inquiry(verified, floorplan)
	id, err := i.Store.CreateDocument(ctx, enums.MallInquiryCollection, inquiry)
	if err != nil {
		if floorplan != nil {
			logger.ErrorWithMsg(err, fmt.Sprintf("Floorplan %s was saved without an inquiry", floorplan.Filename))
		}
		return "", nil, fmt.Errorf("failed to store the mall inquiry: %w", err)
	}

	i.notify(ctx, Lead{
		Kind:  enums.Mall,
		ID:    id,
		Name:  inquiry.ContactName,
		Email: inquiry.Email,
		Phone: inquiry.Phone,
		Details: map[string]string{
			"Mall":                   inquiry.MallName,
			"City":                   inquiry.LocationCity,
			"Available space (sqft)": fmt.Sprintf("%d", inquiry.AvailableSpaceSqft),
		},
	})

	return id, floorplan, nil
}

// Recent returns the newest inquiries of the given kind
func (i *Inquiry) Recent(ctx context.Context, kind string, limit int64) (interface{}, int, error) {
	switch kind {
	case enums.Franchise:
		docs := []models.FranchiseInquiry{}
		err := i.Store.GetDocuments(ctx, enums.FranchiseInquiryCollection, store.Query{Newest: true, Limit: limit}, &docs)
		return docs, len(docs), err
	case enums.Mall:
		docs := []models.MallInquiry{}
		err := i.Store.GetDocuments(ctx, enums.MallInquiryCollection, store.Query{Newest: true, Limit: limit}, &docs)
		return docs, len(docs), err
	default:
		return nil, 0, errors.ErrNotFound
	}
}

func (i *Inquiry) notify(ctx context.Context, lead Lead) {
	if i.Notifier == nil {
		return
	}
	if err := i.Notifier.Notify(ctx, lead); err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("Failed to send the lead alert for %s", lead.ID))
	}
}
