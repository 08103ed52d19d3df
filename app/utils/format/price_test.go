package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yilmazatalay/go-catalog/app/utils/format"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₺0,00"},
		{"small amount", decimal.NewFromFloat(9.9), "₺9,90"},
		{"thousands separator", decimal.NewFromFloat(1234.5), "₺1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.FormatPrice(tt.amount); got != tt.want {
				t.Errorf("FormatPrice(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
