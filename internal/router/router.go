// Package router classifies an inbound question as either a currency
// conversion request or a general FAQ question.
package router

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

type Kind string

const (
	KindCurrency Kind = "currency"
	KindFAQ      Kind = "faq"
)

const (
	DefaultAmount = 1.0
	DefaultBase   = "USD"
	DefaultTarget = "UGX"
)

// Triggers are matched as plain substrings of the lowercased question.
// "rate " carries a trailing space, which keeps "rates" and a sentence-final
// "operate" from matching; "operate in" still matches. The other two are
// unguarded.
var Triggers = []string{"exchange rate", "convert", "rate "}

var knownCurrencies = []string{
	"UGX", "KES", "TZS", "ZAR", "NGN", "GHS", "RWF", "BIF", "ETB", "SSP", "MWK", "ZMW", "MUR", "SCR",
	"EUR", "USD", "GBP", "AUD", "CAD",
}

var currencySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(knownCurrencies))
	for _, c := range knownCurrencies {
		m[c] = struct{}{}
	}
	return m
}()

var (
	amountPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	codePattern   = regexp.MustCompile(`[A-Za-z]{3}`)
)

// Routed is either a CurrencyQuery or a FaqQuery.
type Routed interface {
	Kind() Kind
	routed()
}

type CurrencyQuery struct {
	Amount float64
	From   string
	To     string
}

func (CurrencyQuery) Kind() Kind { return KindCurrency }
func (CurrencyQuery) routed() {}

type FaqQuery struct {
	Question string
}

func (FaqQuery) Kind() Kind { return KindFAQ }
func (FaqQuery) routed() {}

// KnownCurrencies returns the accepted currency codes in canonical order.
func KnownCurrencies() []string {
	out := make([]string, len(knownCurrencies))
	copy(out, knownCurrencies)
	return out
}

func IsKnownCurrency(code string) bool {
	_, ok := currencySet[strings.ToUpper(code)]
	return ok
}

// Route classifies question. It performs no I/O.
func Route(question string) Routed {
	q := strings.TrimSpace(question)
	lower := strings.ToLower(q)

	if !IsCurrencyQuestion(lower) {
		return FaqQuery{Question: q}
	}

	query := CurrencyQuery{
		Amount: ExtractAmount(lower),
		From:   DefaultBase,
		To:     DefaultTarget,
	}

	// Only the first two codes are used; any others are ignored.
	codes := ExtractCurrencies(lower)
	switch {
	case len(codes) == 1:
		query.To = codes[0]
	case len(codes) >= 2:
		query.From, query.To = codes[0], codes[1]
	}
	return query
}

func IsCurrencyQuestion(text string) bool {
	lower := strings.ToLower(text)
	for _, t := range Triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// ExtractAmount returns the first unsigned decimal number in text, or
// DefaultAmount when there is none.
func ExtractAmount(text string) float64 {
	m := amountPattern.FindString(text)
	if m == "" {
		return DefaultAmount
	}
	amount, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range numbers come back as +Inf so the lookup fails
		// rather than quoting a rate for the default amount.
		if errors.Is(err, strconv.ErrRange) {
			return amount
		}
		return DefaultAmount
	}
	return amount
}

// ExtractCurrencies scans text in non-overlapping runs of three letters and
// returns, uppercased and in scan order, those that are known currencies.
// Repeats are kept.
func ExtractCurrencies(text string) []string {
	var codes []string
	for _, tok := range codePattern.FindAllString(text, -1) {
		tok = strings.ToUpper(tok)
		if _, ok := currencySet[tok]; ok {
			codes = append(codes, tok)
		}
	}
	return codes
}
