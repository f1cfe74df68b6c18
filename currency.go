package trackit

import "github.com/Rhymond/go-money"

// DefaultCurrency is the fallback display symbol applied by the loader when a
// persisted notebook predates the currency field.
const DefaultCurrency = "₹"

// Currency is one entry of the fixed reference list offered at notebook
// creation. Symbol is the display glyph stored on the notebook.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// referenceCurrencies is the closed set offered at notebook creation.
// Symbols come from the go-money currency metadata.
var referenceCurrencies = []struct {
	code string
	name string
}{
	{money.INR, "Indian Rupee"},
	{money.USD, "US Dollar"},
	{money.EUR, "Euro"},
	{money.GBP, "British Pound"},
	{money.JPY, "Japanese Yen"},
	{money.AUD, "Australian Dollar"},
	{money.CAD, "Canadian Dollar"},
	{money.CHF, "Swiss Franc"},
	{money.CNY, "Chinese Yuan"},
	{money.SGD, "Singapore Dollar"},
}

// Currencies returns the fixed reference list of currencies a notebook can be
// created with.
func Currencies() []Currency {
	out := make([]Currency, 0, len(referenceCurrencies))
	for _, rc := range referenceCurrencies {
		out = append(out, Currency{
			Code:   rc.code,
			Symbol: money.GetCurrency(rc.code).Grapheme,
			Name:   rc.name,
		})
	}
	return out
}

// KnownCurrency reports whether symbol belongs to the reference list.
func KnownCurrency(symbol string) bool {
	for _, c := range Currencies() {
		if c.Symbol == symbol {
			return true
		}
	}
	return false
}
