package cli

import (
	"context"
	"strconv"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// AddTransaction запрашивает данные складской операции и регистрирует её.
func (a *App) AddTransaction(ctx context.Context) error {
	itemUID, err := getSimpleText(a.reader, "Item UID", a.out)
	if err != nil {
		return err
	}
	txType, err := getSimpleText(a.reader, "Type (IN, OUT, ADJUST)", a.out)
	if err != nil {
		return err
	}
	quantityText, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(quantityText)
	if err != nil {
		printlnFn("Invalid quantity:", quantityText)
		return err
	}
	priceText, err := getSimpleText(a.reader, "Unit price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		printlnFn("Invalid price:", priceText)
		return err
	}
	date, err := getSimpleText(a.reader, "Transaction date (2006-01-02)", a.out)
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason (PURCHASE, SELL, DISPOSE, GIFT, LOST, ADJUST)", a.out)
	if err != nil {
		return err
	}
	accountUID, err := getSimpleText(a.reader, "Account UID", a.out)
	if err != nil {
		return err
	}

	uid, err := a.api.CreateTransaction(ctx, models.DummyStockTransaction{
		ItemUID:         itemUID,
		Type:            txType,
		Quantity:        quantity,
		UnitPrice:       price,
		TransactionDate: date,
		Reason:          reason,
		AccountUID:      accountUID,
	})
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}

	printlnFn("Recorded transaction", uid)
	return nil
}
