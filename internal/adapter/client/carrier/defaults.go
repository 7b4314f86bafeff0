package carrier

import (
	"strings"

	"github.com/vinoteca/wineshop/internal/core/domain"
)

// carrierClassDefaults fills characteristic fields the upstream feed left
// out. Every option surfaced to a caller gets a fully populated record;
// which defaults apply depends on the carrier class, not on the
// individual option.
var carrierClassDefaults = map[string]domain.Characteristics{
	"express": {
		IsTracked:         true,
		RequiresSignature: true,
		IsExpress:         true,
		LastMile:          domain.LastMileHomeDelivery,
	},
	"postal": {
		IsTracked: true,
		LastMile:  domain.LastMileHomeDelivery,
	},
	"pickup": {
		IsTracked: true,
		LastMile:  domain.LastMileServicePoint,
	},
}

func classOf(carrierCode string) string {
	code := strings.ToLower(carrierCode)
	switch {
	case strings.Contains(code, "express"):
		return "express"
	case strings.Contains(code, "pickup") || strings.Contains(code, "point"):
		return "pickup"
	default:
		return "postal"
	}
}

// defaultsFor returns the characteristic defaults for a carrier, with the
// zero-money insurance tagged to the requested currency so the record is
// complete even when the feed says nothing at all.
func defaultsFor(carrierCode string, currency domain.Currency) domain.Characteristics {
	defaults := carrierClassDefaults[classOf(carrierCode)]
	defaults.Insurance = domain.MustMoney(0, currency)
	defaults.Restrictions = []string{}
	return defaults
}
