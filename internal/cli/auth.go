package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/services"
)

// Login authenticates against the directory (or the admin aliases) and
// keeps the in-memory identity in step with the persisted session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", os.Stdout)
	if err != nil {
		return err
	}

	user, isAdmin, err := a.directory.Authenticate(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			printlnFn("Invalid credentials")
			return nil
		}
		printlnFn("Login failed:", err.Error())
		return nil
	}

	a.currentUser = &user
	a.isAdmin = isAdmin
	printlnFn("Welcome,", user.FullName())
	return nil
}

// Register collects the registration form, optionally with a first payment
// card, and promotes the new user to the active session.
func (a *App) Register(ctx context.Context) error {
	req := services.RegisterRequest{}
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"Email", &req.Email},
		{"Phone (10 digits)", &req.Phone},
		{"Address", &req.Address},
	}
	for _, p := range prompts {
		if *p.dst, err = GetSimpleText(a.reader, p.label, os.Stdout); err != nil {
			return err
		}
	}

	if req.Password, err = GetPassword("Password", os.Stdout); err != nil {
		return err
	}
	if req.ConfirmPassword, err = GetPassword("Confirm password", os.Stdout); err != nil {
		return err
	}

	withCard, err := GetYesNo(a.reader, "Save a payment card now?", os.Stdout)
	if err != nil {
		return err
	}
	if withCard {
		if req.CardName, err = GetSimpleText(a.reader, "Card nickname", os.Stdout); err != nil {
			return err
		}
		if req.CardNumber, err = GetSimpleText(a.reader, "Card number (16 digits)", os.Stdout); err != nil {
			return err
		}
		if req.CardExpiry, err = GetSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout); err != nil {
			return err
		}
		if req.CardCVC, err = GetSimpleText(a.reader, "CVC", os.Stdout); err != nil {
			return err
		}
	}

	user, err := a.directory.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			printlnFn("Email already exists")
		case errors.Is(err, services.ErrDuplicatePhone):
			printlnFn("Phone number already exists")
		case errors.Is(err, services.ErrValidation):
			printlnFn(err.Error())
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return nil
	}

	a.currentUser = &user
	a.isAdmin = false
	printlnFn(fmt.Sprintf("Registered as %s (id %s)", user.FullName(), user.ID))
	return nil
}

// Logout clears the session. Logging out while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.directory.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return nil
	}
	a.currentUser = nil
	a.isAdmin = false
	printlnFn("Logged out")
	return nil
}
