package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdminUser() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, arg string) error
	RemoveFromCart(ctx context.Context, arg string) error
	SetQuantity(ctx context.Context, args []string) error
	Cards(ctx context.Context) error
	AddCard(ctx context.Context) error
	Checkout(ctx context.Context) error
	Users(ctx context.Context) error
	Export(ctx context.Context) error
	DeleteUser(ctx context.Context, arg string) error
}

// runREPL starts the storefront command loop. It reads a line, parses the
// first token as the command, and dispatches to methods on 'a'. Errors
// returned by handlers are ignored here; handlers report their own
// messages, which keeps the loop resilient and focused on I/O. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("store> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "p", "products":
			_ = a.Products(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.AddToCart(ctx, firstArg(args))

		case "remove":
			_ = a.RemoveFromCart(ctx, firstArg(args))

		case "qty":
			_ = a.SetQuantity(ctx, args)

		case "cards":
			_ = a.Cards(ctx)

		case "addcard":
			_ = a.AddCard(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "users":
			_ = a.Users(ctx)

		case "export":
			_ = a.Export(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx, firstArg(args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Shopping: (p)roducts, cart, add <id>, remove <id>, qty <id> <n>, checkout")
	if a.isLoggedIn() {
		printlnFn("Account: cards, addcard, logout, exit")
	} else {
		printlnFn("Account: register, login, exit")
	}
	if a.isAdminUser() {
		printlnFn("Admin: users, export, deluser <id>")
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
