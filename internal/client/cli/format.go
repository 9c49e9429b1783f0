package cli

import (
	"fmt"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

func formatProfile(p *models.Profile) string {
	return fmt.Sprintf("%s <%s> (id %s)", p.Username, p.Email, p.ID)
}

func formatItem(item *models.Item) string {
	line := fmt.Sprintf("%s  %s", item.UID, item.Name)
	if item.Brand != "" {
		line += "  " + item.Brand
	}
	line += fmt.Sprintf("  %.2f  %s", item.PurchasePrice, item.Status)
	return line
}

func formatAccount(account *models.Account) string {
	return fmt.Sprintf("%s  %s  %s", account.UID, account.Name, account.Type)
}
