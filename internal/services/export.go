package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// Date layouts for the report, day-first as the storefront displays them.
const (
	exportTimeLayout = "02.01.2006 15:04:05"
	exportDateLayout = "02.01.2006"
)

// ExportReport renders the full directory as plain text. Card numbers are
// masked to their last four digits; passwords are emitted as stored, in
// clear text. That exposure is a documented property of this demo store,
// not something the report layer is allowed to hide.
func (s *directoryService) ExportReport(ctx context.Context) (string, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("DREAM ACCESSORY USERS\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Export Date: %s\n", s.now().Format(exportTimeLayout))
	fmt.Fprintf(&b, "Total Users: %d\n\n", len(all))

	for i, u := range all {
		fmt.Fprintf(&b, "USER #%d\n", i+1)
		fmt.Fprintf(&b, "ID: %s\n", u.ID)
		fmt.Fprintf(&b, "Name: %s\n", u.FullName())
		fmt.Fprintf(&b, "Email: %s\n", orNA(u.Email))
		fmt.Fprintf(&b, "Phone: %s\n", orNA(u.Phone))
		fmt.Fprintf(&b, "Password: %s\n", u.Password)
		fmt.Fprintf(&b, "Address: %s\n", orNA(u.Address))
		fmt.Fprintf(&b, "Registered: %s\n", u.CreatedAt.Format(exportDateLayout))
		fmt.Fprintf(&b, "Role: %s\n", role(u.IsAdmin))

		if len(u.SavedCards) > 0 {
			fmt.Fprintf(&b, "Saved Cards: %d\n", len(u.SavedCards))
			for j, c := range u.SavedCards {
				fmt.Fprintf(&b, "  Card %d: %s\n", j+1, c.CardName)
				fmt.Fprintf(&b, "    Number: %s\n", models.MaskCardNumber(c.CardNumber))
				fmt.Fprintf(&b, "    Expiry: %s\n", c.CardExpiry)
				fmt.Fprintf(&b, "    Added: %s\n", c.AddedDate.Format(exportDateLayout))
			}
		} else {
			b.WriteString("Saved Cards: None\n")
		}
		b.WriteString("---\n")
	}

	return b.String(), nil
}

// ExportFilename names the export artifact after the current date.
func (s *directoryService) ExportFilename() string {
	return fmt.Sprintf("users_export_%s.txt", s.now().Format("2006-01-02"))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func role(isAdmin bool) string {
	if isAdmin {
		return "Admin"
	}
	return "User"
}
