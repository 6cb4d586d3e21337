package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gisusafaris/faq-bot/internal/rates"
)

const (
	MsgRateUnavailable = "Sorry, could not fetch the exchange rate."
	MsgRateError       = "Error fetching exchange rate."
)

// FormatConversion looks up amount from->to and renders it for the visitor.
// Lookup failures become one of the fixed fallback messages.
func FormatConversion(ctx context.Context, amount float64, from, to string, converter rates.Converter) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Exchange rate lookup panicked", "panic", r)
			msg = MsgRateError
		}
	}()

	if converter == nil {
		return MsgRateError
	}

	conv := converter.Convert(ctx, amount, from, to)
	switch conv.Status {
	case rates.StatusConverted:
		return fmt.Sprintf("%s %s = %.2f %s", formatAmount(amount), from, conv.Result, to)
	case rates.StatusNoResult:
		return MsgRateUnavailable
	default:
		return MsgRateError
	}
}

// formatAmount prints the shortest decimal form: 100 -> "100", 2.5 -> "2.5".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
