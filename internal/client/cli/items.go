package cli

import (
	"context"
	"strconv"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// ListItems печатает список предметов текущего пользователя.
func (a *App) ListItems(ctx context.Context) error {
	items, err := a.api.ListItems(ctx)
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No items yet")
		return nil
	}
	for _, item := range items {
		printlnFn(formatItem(item))
	}
	return nil
}

// AddItem запрашивает данные предмета и создает его на сервере.
func (a *App) AddItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	brand, err := getSimpleText(a.reader, "Brand (optional)", a.out)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Purchase price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		printlnFn("Invalid price:", priceText)
		return err
	}
	date, err := getSimpleText(a.reader, "Purchase date (2006-01-02)", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Storage location (optional)", a.out)
	if err != nil {
		return err
	}

	uid, err := a.api.CreateItem(ctx, models.DummyItem{
		Name:          name,
		Brand:         brand,
		PurchasePrice: price,
		PurchaseDate:  date,
		Location:      location,
	})
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}

	printlnFn("Created item", uid)
	return nil
}
