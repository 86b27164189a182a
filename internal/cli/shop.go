package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/services"
)

// Products lists the catalog fetched at start-up.
func (a *App) Products(ctx context.Context) error {
	if len(a.products) == 0 {
		printlnFn("No products available")
		return nil
	}
	for _, p := range a.products {
		printlnFn(fmt.Sprintf("%4d  %-30s %-12s %8.2f ₺", p.ID, p.Name, p.Category, p.Price))
	}
	return nil
}

// AddToCart adds one unit of the product with the given id.
func (a *App) AddToCart(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Usage: add <product-id>")
		return nil
	}

	for _, p := range a.products {
		if p.ID == id {
			if err := a.cart.AddItem(ctx, p); err != nil {
				printlnFn("Failed to add item:", err.Error())
				return nil
			}
			printlnFn(p.Name, "added to cart!")
			return nil
		}
	}
	printlnFn("No such product:", arg)
	return nil
}

// RemoveFromCart deletes the line for the given product id.
func (a *App) RemoveFromCart(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Usage: remove <product-id>")
		return nil
	}
	if err := a.cart.RemoveItem(ctx, id); err != nil {
		printlnFn("Failed to remove item:", err.Error())
		return nil
	}
	printlnFn("Removed")
	return nil
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: qty <product-id> <quantity>")
		return nil
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	qty, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		printlnFn("Usage: qty <product-id> <quantity>")
		return nil
	}
	if err := a.cart.SetQuantity(ctx, id, qty); err != nil {
		printlnFn("Failed to update quantity:", err.Error())
		return nil
	}
	printlnFn("Updated")
	return nil
}

// ShowCart prints the lines, the item count and the running total.
func (a *App) ShowCart(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		printlnFn("Failed to read cart:", err.Error())
		return nil
	}
	if len(items) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%4d  %-30s x%-3d %8.2f ₺",
			item.Product.ID, item.Product.Name, item.Quantity, item.Subtotal()))
	}

	total, err := a.cart.Total(ctx)
	if err != nil {
		printlnFn("Failed to total cart:", err.Error())
		return nil
	}
	count, err := a.cart.Count(ctx)
	if err != nil {
		printlnFn("Failed to count cart:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Items: %d  Total: %.2f ₺", count, total))
	return nil
}

// Cards lists the saved cards of the active user, numbers masked.
func (a *App) Cards(ctx context.Context) error {
	if a.currentUser == nil {
		printlnFn("Please login first")
		return nil
	}
	if len(a.currentUser.SavedCards) == 0 {
		printlnFn("No saved cards")
		return nil
	}
	for _, c := range a.currentUser.SavedCards {
		marker := " "
		if c.IsDefault {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %-20s %s  exp %s", marker, c.CardName,
			models.MaskCardNumber(c.CardNumber), c.CardExpiry))
	}
	return nil
}

// AddCard adds a card to the active user's vault.
func (a *App) AddCard(ctx context.Context) error {
	if a.currentUser == nil {
		printlnFn("Please login first")
		return nil
	}

	req, err := a.promptCard()
	if err != nil {
		return err
	}

	card, err := a.directory.AddCard(ctx, a.currentUser.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			printlnFn(err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			printlnFn("User not found")
		default:
			printlnFn("Failed to add card:", err.Error())
		}
		return nil
	}

	// Pick up the refreshed session snapshot so 'cards' shows the vault.
	current, isAdmin, err := a.directory.CurrentUser(ctx)
	if err == nil && current != nil {
		a.currentUser = current
		a.isAdmin = isAdmin
	}

	printlnFn("Card saved:", models.MaskCardNumber(card.CardNumber))
	return nil
}

// Checkout runs the simulated payment over the cart total and clears the
// cart on success. Cancelling mid-delay drops the payment; the cart stays.
func (a *App) Checkout(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		printlnFn("Failed to read cart:", err.Error())
		return nil
	}
	if len(items) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	total, err := a.cart.Total(ctx)
	if err != nil {
		printlnFn("Failed to total cart:", err.Error())
		return nil
	}

	card, err := a.chooseCard(ctx)
	if err != nil {
		return err
	}
	if card == nil {
		printlnFn("Checkout cancelled")
		return nil
	}

	printlnFn(fmt.Sprintf("Processing payment of %.2f ₺ ...", total))
	receipt, err := a.payments.Pay(ctx, total, *card)
	if err != nil {
		if errors.Is(err, services.ErrPaymentCancelled) {
			printlnFn("Payment cancelled, cart unchanged")
			return nil
		}
		printlnFn("Payment failed:", err.Error())
		return nil
	}

	if err := a.cart.Clear(ctx); err != nil {
		printlnFn("Payment succeeded but cart could not be cleared:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Payment successful! Order %s, card ending %s", receipt.OrderID, receipt.CardLast4))
	return nil
}

// chooseCard picks the payment card: the default saved card when the user
// confirms, otherwise a one-off card entered at the prompt. A nil card with
// nil error means the user backed out.
func (a *App) chooseCard(ctx context.Context) (*models.Card, error) {
	if a.currentUser != nil {
		if def := a.currentUser.DefaultCard(); def != nil {
			useSaved, err := GetYesNo(a.reader,
				fmt.Sprintf("Pay with saved card %s (%s)?", def.CardName, models.MaskCardNumber(def.CardNumber)), os.Stdout)
			if err != nil {
				return nil, err
			}
			if useSaved {
				return def, nil
			}
		}
	}

	useNew, err := GetYesNo(a.reader, "Enter a new card?", os.Stdout)
	if err != nil {
		return nil, err
	}
	if !useNew {
		return nil, nil
	}

	req, err := a.promptCard()
	if err != nil {
		return nil, err
	}
	if err := services.ValidateCardRequest(req); err != nil {
		printlnFn(err.Error())
		return nil, nil
	}
	return &models.Card{
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCVC:    req.CardCVC,
	}, nil
}

func (a *App) promptCard() (services.CardRequest, error) {
	req := services.CardRequest{}
	var err error
	if req.CardName, err = GetSimpleText(a.reader, "Card nickname", os.Stdout); err != nil {
		return req, err
	}
	if req.CardNumber, err = GetSimpleText(a.reader, "Card number (16 digits)", os.Stdout); err != nil {
		return req, err
	}
	if req.CardExpiry, err = GetSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout); err != nil {
		return req, err
	}
	if req.CardCVC, err = GetSimpleText(a.reader, "CVC", os.Stdout); err != nil {
		return req, err
	}
	return req, nil
}
