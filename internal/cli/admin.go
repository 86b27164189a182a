package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/services"
)

// Users prints the full directory, built-in admin included. Card numbers
// are masked; this is the interactive view, not the export artifact.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin {
		printlnFn("Admin access required")
		return nil
	}

	all, err := a.directory.ListAll(ctx)
	if err != nil {
		printlnFn("Failed to list users:", err.Error())
		return nil
	}

	for _, u := range all {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		printlnFn(fmt.Sprintf("%-24s %-25s %-30s %-12s %s", u.ID, u.FullName(), u.Email, u.Phone, role))
		for _, c := range u.SavedCards {
			printlnFn(fmt.Sprintf("    card: %-20s %s", c.CardName, models.MaskCardNumber(c.CardNumber)))
		}
	}
	return nil
}

// Export writes the directory report to a date-named text file. Only the
// administrator may produce the artifact.
func (a *App) Export(ctx context.Context) error {
	if !a.isAdmin {
		printlnFn("Admin access required")
		return nil
	}

	report, err := a.directory.ExportReport(ctx)
	if err != nil {
		printlnFn("Export failed:", err.Error())
		return nil
	}

	path := filepath.Join(a.config.ExportDir, a.directory.ExportFilename())
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		printlnFn("Failed to write export file:", err.Error())
		return nil
	}

	printlnFn("Exported to", path)
	return nil
}

// DeleteUser removes a registered user; deleting the active identity logs
// it out as well.
func (a *App) DeleteUser(ctx context.Context, arg string) error {
	if !a.isAdmin {
		printlnFn("Admin access required")
		return nil
	}
	if arg == "" {
		printlnFn("Usage: deluser <user-id>")
		return nil
	}

	if err := a.directory.DeleteUser(ctx, arg); err != nil {
		if errors.Is(err, services.ErrProtectedAccount) {
			printlnFn("The built-in administrator cannot be deleted")
			return nil
		}
		printlnFn("Delete failed:", err.Error())
		return nil
	}

	// The deletion may have torn down our own session.
	current, isAdmin, err := a.directory.CurrentUser(ctx)
	if err == nil {
		a.currentUser = current
		a.isAdmin = isAdmin
	}

	printlnFn("Deleted", arg)
	return nil
}
