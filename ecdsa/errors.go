package ecdsa

import "errors"

var (
	// ErrSigRangeInvalid is returned when r or s is zero or not strictly
	// less than the group order.
	ErrSigRangeInvalid = errors.New("ecdsa: r or s out of range")
	// ErrWrongHashLength is returned when the digest length does not
	// match the curve's expected hash size.
	ErrWrongHashLength = errors.New("ecdsa: wrong hash length for curve")
	// ErrInvalidSignature is returned when the signature fails to verify.
	ErrInvalidSignature = errors.New("ecdsa: signature verification failed")
)
