package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var vnd = message.NewPrinter(language.Italian)

// formatVND форматирует сумму так же, как витрина:
// Intl.NumberFormat('it-IT', {currency: 'VND'}) — целое число
// с разделителями тысяч и кодом валюты.
func formatVND(amount float64) string {
	return vnd.Sprintf("%v VND", number.Decimal(math.Round(amount)))
}
