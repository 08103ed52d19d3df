package renderer

import (
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/yilmazatalay/go-catalog/app/utils/format"
)

func New() *render.Render {
	return render.New(render.Options{
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"formatPrice": func(amount decimal.Decimal) string {
					return format.FormatPrice(amount)
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"until": func(count int) []int {
					items := make([]int, count)
					for i := 0; i < count; i++ {
						items[i] = i
					}
					return items
				},
			},
		},
	})
}
