package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

// Modifier adjusts an entry's name and unit price before the entry is
// built. Add-ons compose by applying in sequence; no wrapper chain.
type Modifier func(name string, unitPrice decimal.Decimal) (string, decimal.Decimal)

func Extra(label string, delta decimal.Decimal) Modifier {
	return func(name string, unitPrice decimal.Decimal) (string, decimal.Decimal) {
		return name + " + " + label, unitPrice.Add(delta)
	}
}

var extras = map[string]Modifier{}

func RegisterExtra(key string, m Modifier) {
	extras[strings.ToLower(key)] = m
}

// ExtrasByName resolves add-on keys coming from a request; an unknown key
// rejects the whole add.
func ExtrasByName(keys ...string) ([]Modifier, error) {
	mods := make([]Modifier, 0, len(keys))
	for _, k := range keys {
		m, ok := extras[strings.ToLower(k)]
		if !ok {
			return nil, apperr.Newf(apperr.Validation, "unknown extra %q", k)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

func init() {
	RegisterExtra("extra_cheese", Extra("Extra Cheese", decimal.RequireFromString("1.50")))
	RegisterExtra("extra_sauce", Extra("Extra Sauce", decimal.RequireFromString("0.75")))
}
