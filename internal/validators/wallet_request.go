package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

// Field name constants accepted by [WalletRequestValidator.Validate] to
// restrict validation to a subset of fields.
const (
	FieldInviteCode  = "invite_code"
	FieldNotes       = "notes"
	FieldPaymentInfo = "payment_info"
	FieldAmount      = "amount"
	FieldExpiry      = "expiry"
)

type WalletRequestValidator struct {
}

func NewWalletRequestValidator() Validator {
	return &WalletRequestValidator{}
}

// Validate checks a join, reissue, pay or invoice request. With no fields
// every rule of the request type is applied.
func (v *WalletRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JoinRequest:
		return v.validateJoin(value, fields...)
	case *models.JoinRequest:
		return v.validateJoin(*value, fields...)

	case models.ReissueRequest:
		return v.validateReissue(value, fields...)
	case *models.ReissueRequest:
		return v.validateReissue(*value, fields...)

	case models.PayRequest:
		return v.validatePay(value, fields...)
	case *models.PayRequest:
		return v.validatePay(*value, fields...)

	case models.InvoiceRequest:
		return v.validateInvoice(value, fields...)
	case *models.InvoiceRequest:
		return v.validateInvoice(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WalletRequestValidator) validateJoin(req models.JoinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInviteCode}
	}

	for _, f := range fields {
		switch f {
		case FieldInviteCode:
			if isBlank(req.InviteCode) {
				return ErrEmptyInviteCode
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletRequestValidator) validateReissue(req models.ReissueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldNotes:
			if isBlank(req.Notes) {
				return ErrEmptyNotes
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletRequestValidator) validatePay(req models.PayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPaymentInfo}
	}

	for _, f := range fields {
		switch f {
		case FieldPaymentInfo:
			if isBlank(req.PaymentInfo) {
				return ErrEmptyPaymentInfo
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletRequestValidator) validateInvoice(req models.InvoiceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldExpiry}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if req.AmountMsat <= 0 {
				return ErrNonPositiveAmount
			}
		case FieldExpiry:
			if req.ExpiryTime < 0 {
				return ErrNegativeExpiry
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
