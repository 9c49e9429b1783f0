package cli

import (
	"context"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// ListAccounts печатает список счетов текущего пользователя.
func (a *App) ListAccounts(ctx context.Context) error {
	accounts, err := a.api.ListAccounts(ctx)
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}
	if len(accounts) == 0 {
		printlnFn("No accounts yet")
		return nil
	}
	for _, account := range accounts {
		printlnFn(formatAccount(account))
	}
	return nil
}

// AddAccount запрашивает данные счёта и создает его на сервере.
func (a *App) AddAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", a.out)
	if err != nil {
		return err
	}
	accType, err := getSimpleText(a.reader, "Type (CASH, BANK, PLATFORM, OTHER)", a.out)
	if err != nil {
		return err
	}

	uid, err := a.api.CreateAccount(ctx, models.DummyAccount{Name: name, Type: accType})
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}

	printlnFn("Created account", uid)
	return nil
}
