package service

import "context"

// CodeService is the one-time-code collaborator. It issues short-lived codes
// bound to a mobile number and verifies submissions against them.
type CodeService interface {
	// Issue generates a fresh code for the mobile number and returns it.
	// Reissuing replaces any previous code for the same number.
	Issue(ctx context.Context, mobile string) (string, error)

	// IsValid reports whether the code is currently valid for the mobile number.
	IsValid(ctx context.Context, mobile, code string) (bool, error)

	// WasIssuedFor reports whether an unexpired code was issued for the
	// mobile number. This rejects a mobile-number swap between code
	// issuance and form submission.
	WasIssuedFor(ctx context.Context, mobile string) (bool, error)
}

// SmsSender delivers a message to a mobile number out of band.
// Delivery itself is an external concern; implementations may only log.
type SmsSender interface {
	Send(ctx context.Context, mobile, message string) error
}
