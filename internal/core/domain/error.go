package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest       = errors.New("error parsing request")
	ErrTooManyRequests  = errors.New("request rate limit exceeded")
	ErrUpstreamProvider = errors.New("upstream provider failed")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrInvalidSignature           = errors.New("webhook signature is invalid")

	// * Business errors.
	ErrInvalidAmount           = errors.New("amount is negative or not in minor units")
	ErrCurrencyMismatch        = errors.New("operands carry different currencies")
	ErrUnsupportedJurisdiction = errors.New("no tax rate configured for jurisdiction")
	ErrCalculation             = errors.New("calculation input is not normalized")
	ErrTotalsMismatch          = errors.New("submitted totals do not match recomputed totals")
)

// ValidationErrors maps a dotted field path ("shipping_address.country") to
// the problems found there. It satisfies error so validation failures travel
// the same path as every other failure.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
