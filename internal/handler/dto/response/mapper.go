package response

import (
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// prices leave the API as fixed two-decimal strings
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.Newf("unexpected price type %T", src)
				}
				return d.StringFixed(2), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, errs.Newf("unexpected id type %T", src)
				}
				return id.String(), nil
			},
		},
	},
}

func mapTo[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "map response")
	}
	return &dst, nil
}
