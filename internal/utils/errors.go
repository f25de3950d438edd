package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidClient      = errors.New("INVALID_CLIENT")
	ErrInvalidIP          = errors.New("INVALID_IP")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrProductInUse       = errors.New("PRODUCT_IN_USE")
	ErrPlanNotFound       = errors.New("PLAN_NOT_FOUND")
	ErrPaymentLinkMissing = errors.New("PAYMENT_LINK_NOT_FOUND")
	ErrInvalidAmount      = errors.New("INVALID_AMOUNT")
	ErrClientNotFound     = errors.New("CLIENT_NOT_FOUND")
)
