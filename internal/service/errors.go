package service

import "errors"

// Sentinel errors for service layer
var (
	ErrNotConfigured = errors.New("service not configured")
	ErrUpstream      = errors.New("upstream error")
	ErrRecaptcha     = errors.New("recaptcha verification failed")
)
