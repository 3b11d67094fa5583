package handlers_test

import (
	"fmt"

	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
)

func wrapValidation(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
}
