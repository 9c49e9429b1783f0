// Package daterange содержит разбор периода отчёта из query-параметров.
package daterange

import (
	"fmt"
	"net/http"
	"time"
)

// Parse извлекает период из параметров start_date и end_date.
// Когда параметры отсутствуют, берутся последние 30 дней.
func Parse(r *http.Request) (time.Time, time.Time, error) {
	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	startDate := endDate.AddDate(0, 0, -30)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
		}
		startDate = parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
		}
		endDate = parsed
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date is before start_date")
	}
	return startDate, endDate, nil
}
