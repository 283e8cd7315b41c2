package errors

import (
	"fmt"

	"github.com/vapehero/wholesale-backend/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorf keeps the type's code and HTTP class but carries a
// request-specific message, e.g. naming the offending product.
func SetCustomErrorf(errorType constant.ErrorType, format string, args ...any) CustomError {
	return CustomError{
		errType: errorType,
		detail:  fmt.Sprintf(format, args...),
	}
}

// InsufficientStockError carries how much stock was actually available next
// to what the caller asked for, so the order line failure is actionable.
type InsufficientStockError struct {
	Available int64
	Requested int64
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock. available: %d, requested: %d", e.Available, e.Requested)
}

func (e InsufficientStockError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrInsufficientStock]
}

func (e InsufficientStockError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrInsufficientStock]
}
