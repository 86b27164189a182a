package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// RegisterRequest carries the registration form. Card fields are optional;
// when CardNumber is set the card is validated and becomes the vault's
// default card.
type RegisterRequest struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required"`
	Address         string `validate:"required"`

	CardName   string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

// CardRequest carries the fields for adding a card to an existing vault.
type CardRequest struct {
	CardName   string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

func validationError(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

func validateRegister(v *validator.Validate, req RegisterRequest) error {
	if err := v.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			switch {
			case e.Field() == "Email" && e.Tag() == "email":
				return validationError("email address is malformed")
			case e.Field() == "Password" && e.Tag() == "min":
				return validationError("password must be at least 6 characters")
			default:
				return validationError(fmt.Sprintf("%s is required", strings.ToLower(e.Field())))
			}
		}
		return validationError(err.Error())
	}

	if req.Password != req.ConfirmPassword {
		return validationError("passwords do not match")
	}
	if len(models.NormalizePhone(req.Phone)) != 10 {
		return validationError("phone number must be 10 digits")
	}

	if req.CardNumber != "" {
		return validateCardFields(req.CardNumber, req.CardExpiry, req.CardCVC)
	}
	return nil
}

func validateCard(req CardRequest) error {
	return validateCardFields(req.CardNumber, req.CardExpiry, req.CardCVC)
}

// ValidateCardRequest checks one-off card details entered at checkout; the
// same rules apply as for vault cards.
func ValidateCardRequest(req CardRequest) error {
	return validateCard(req)
}

func validateCardFields(number, expiry, cvc string) error {
	if len(strings.ReplaceAll(number, " ", "")) != 16 {
		return validationError("card number must be 16 digits")
	}
	if expiry == "" {
		return validationError("card expiry is required")
	}
	if len(cvc) != 3 {
		return validationError("card CVC must be 3 digits")
	}
	return nil
}
