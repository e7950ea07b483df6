// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "zml/internal/domain/errors"
	"zml/internal/errors"
)

// passThrough returns err unchanged when it already carries a domain
// error, and otherwise wraps it as a generic internal failure. Services
// let domain-specific errors flow and normalize only the unexpected.
func passThrough(err error, detail string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrInternal.
		WithDetails(detail + ": " + err.Error()).
		WrapMessage(detail)
}
