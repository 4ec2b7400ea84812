package cart

import (
	"github.com/shopspring/decimal"
)

// PricingKind selects the pure function that turns a subtotal into the
// charged total. The cart never needs to know which variant is active.
type PricingKind int

const (
	// PricingNormal charges exactly the subtotal.
	PricingNormal PricingKind = iota
	// PricingDeliverySurcharge adds a flat delivery surcharge on top.
	PricingDeliverySurcharge
)

var deliverySurcharge = decimal.RequireFromString("2.00")

func (k PricingKind) apply(subtotal decimal.Decimal) decimal.Decimal {
	switch k {
	case PricingDeliverySurcharge:
		return subtotal.Add(deliverySurcharge)
	default:
		return subtotal
	}
}

func (k PricingKind) valid() bool {
	return k >= PricingNormal && k <= PricingDeliverySurcharge
}
