package payment

import "errors"

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrAlreadyConfirmed    = errors.New("payment already confirmed")
	ErrReferenceExists     = errors.New("payment reference already exists")
	ErrInvalidTransition   = errors.New("invalid payment status transition")
)
