package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOptions renders every decimal amount as a two-place string.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

func copyFrom(dst, src any) {
	// Every destination mirrors its view field for field.
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic("response mapping: " + err.Error())
	}
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
