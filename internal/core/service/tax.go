package service

import (
	"strings"

	"github.com/vinoteca/wineshop/internal/core/domain"
)

// taxRule is one row of the VAT table: the rate in basis points and
// whether shipping joins the taxable base under this rule.
type taxRule struct {
	RateBasisPoints int64
	RuleID          string
	ShippingTaxable bool
}

// TaxResolver maps destination country + customer type to the applicable
// VAT rule. Purely table-driven; an unknown jurisdiction is a hard
// failure, never a default-to-zero.
type TaxResolver struct {
	rules map[string]map[domain.CustomerType]taxRule
}

// NewTaxResolver loads the standard EU consumer rates plus the
// reverse-charge rule for cross-border business customers.
func NewTaxResolver() *TaxResolver {
	consumer := map[string]taxRule{
		"NL": {RateBasisPoints: 2100, RuleID: "nl-standard", ShippingTaxable: true},
		"BE": {RateBasisPoints: 2100, RuleID: "be-standard", ShippingTaxable: true},
		"DE": {RateBasisPoints: 1900, RuleID: "de-standard", ShippingTaxable: true},
		"FR": {RateBasisPoints: 2000, RuleID: "fr-standard", ShippingTaxable: true},
		"ES": {RateBasisPoints: 2100, RuleID: "es-standard", ShippingTaxable: true},
		"IT": {RateBasisPoints: 2200, RuleID: "it-standard", ShippingTaxable: true},
		"AT": {RateBasisPoints: 2000, RuleID: "at-standard", ShippingTaxable: true},
		"LU": {RateBasisPoints: 1700, RuleID: "lu-standard", ShippingTaxable: true},
	}

	rules := make(map[string]map[domain.CustomerType]taxRule, len(consumer))
	for country, rule := range consumer {
		rules[country] = map[domain.CustomerType]taxRule{
			domain.CustomerConsumer: rule,
		}
		if country == "NL" {
			// Domestic business customers pay the standard rate.
			rules[country][domain.CustomerBusiness] = rule
		} else {
			rules[country][domain.CustomerBusiness] = taxRule{
				RateBasisPoints: 0,
				RuleID:          "eu-reverse-charge",
				ShippingTaxable: false,
			}
		}
	}

	return &TaxResolver{rules: rules}
}

func (r *TaxResolver) Resolve(countryCode string, customerType domain.CustomerType) (domain.TaxRate, error) {
	byType, ok := r.rules[strings.ToUpper(countryCode)]
	if !ok {
		return domain.TaxRate{}, domain.ErrUnsupportedJurisdiction
	}
	rule, ok := byType[customerType]
	if !ok {
		return domain.TaxRate{}, domain.ErrUnsupportedJurisdiction
	}

	return domain.TaxRate{
		CountryCode:     strings.ToUpper(countryCode),
		CustomerType:    customerType,
		RateBasisPoints: rule.RateBasisPoints,
		RuleID:          rule.RuleID,
		ShippingTaxable: rule.ShippingTaxable,
	}, nil
}
