package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Prices are stored as decimals and displayed in Turkish lira.
var lira = accounting.Accounting{Symbol: "₺", Precision: 2, Thousand: ".", Decimal: ","}

func FormatPrice(amount decimal.Decimal) string {
	return lira.FormatMoneyDecimal(amount)
}
