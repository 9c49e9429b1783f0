package cli

import (
	"context"
	"fmt"
)

// Report печатает отчёт о текущей стоимости инвентаря.
func (a *App) Report(ctx context.Context) error {
	report, err := a.api.InventoryValue(ctx)
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Total inventory value: %.2f", report.TotalValue))
	for _, bv := range report.BrandValues {
		printlnFn(fmt.Sprintf("  %s: %.2f", bv.Brand, bv.Value))
	}
	return nil
}
