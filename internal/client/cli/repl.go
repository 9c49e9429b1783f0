package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/inventory-keeper/internal/client/nav"
)

// printlnFn выводит текст пользователю. В тестах подменяется заглушкой.
var printlnFn = fmt.Println

// execIface - минимальный набор команд, которым управляет REPL.
// Тип App реализует этот интерфейс, в тестах используется заглушка.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ListItems(ctx context.Context) error
	AddItem(ctx context.Context) error
	AddTransaction(ctx context.Context) error
	ListAccounts(ctx context.Context) error
	AddAccount(ctx context.Context) error
	Report(ctx context.Context) error
}

// commandRoutes сопоставляет команды экранам навигации. Команды без записи
// в таблице доступны всегда.
var commandRoutes = map[string]nav.Route{
	"login":      {Path: nav.PathLogin, Name: "login"},
	"register":   {Path: nav.PathRegister, Name: "register"},
	"whoami":     {Path: nav.PathHome, Name: "whoami", RequiresAuth: true},
	"logout":     {Path: nav.PathHome, Name: "logout", RequiresAuth: true},
	"items":      {Path: nav.PathItems, Name: "items", RequiresAuth: true},
	"additem":    {Path: nav.PathItems, Name: "additem", RequiresAuth: true},
	"addtx":      {Path: nav.PathItems, Name: "addtx", RequiresAuth: true},
	"accounts":   {Path: nav.PathAccounts, Name: "accounts", RequiresAuth: true},
	"addaccount": {Path: nav.PathAccounts, Name: "addaccount", RequiresAuth: true},
	"report":     {Path: nav.PathReports, Name: "report", RequiresAuth: true},
}

// guard проверяет доступ к команде по текущему состоянию сессии.
// При отказе печатает подсказку и возвращает false.
func guard(cmd string, loggedIn bool) bool {
	route, ok := commandRoutes[cmd]
	if !ok {
		return true
	}
	switch nav.Decide(route, loggedIn) {
	case nav.RedirectLogin:
		printlnFn("Please log in first (type 'login')")
		return false
	case nav.RedirectHome:
		printlnFn("Already logged in (type 'logout' to switch account)")
		return false
	}
	return true
}

// runREPL запускает цикл чтения и выполнения команд. Цикл завершается
// по концу ввода или командам exit и quit. Ошибки команд печатают сами
// обработчики, поэтому здесь они игнорируются.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Inventory Keeper CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("ik [%s] > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !guard(cmd, a.isLoggedIn()) {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, items, additem, addtx, accounts, addaccount, report, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "items":
			_ = a.ListItems(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "addtx":
			_ = a.AddTransaction(ctx)

		case "accounts":
			_ = a.ListAccounts(ctx)

		case "addaccount":
			_ = a.AddAccount(ctx)

		case "report":
			_ = a.Report(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
