package utils

import (
	"fmt"
	"regexp"
	"time"
)

var strictDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseStrictDate aceita somente datas no formato YYYY-MM-DD. Qualquer outra
// entrada é rejeitada para que o chamador aplique o fallback dele.
func ParseStrictDate(dateStr string) (time.Time, error) {
	if !strictDatePattern.MatchString(dateStr) {
		return time.Time{}, fmt.Errorf("data fora do formato YYYY-MM-DD: %q", dateStr)
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}
