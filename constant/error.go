package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrConflict
	ErrInsufficientStock
	ErrOutOfStock
	ErrBelowMinimumOrder
	ErrInvalidOrderStatus
	ErrInvalidOTP
	ErrInvalidPassword
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrForbidden:          "account is not allowed to perform this action",
	ErrConflict:           "conflicting concurrent update, please retry",
	ErrInsufficientStock:  "insufficient stock",
	ErrOutOfStock:         "product is out of stock",
	ErrBelowMinimumOrder:  "quantity is below the product minimum order",
	ErrInvalidOrderStatus: "invalid order status transition",
	ErrInvalidOTP:         "verification code is invalid or expired",
	ErrInvalidPassword:    "password invalid",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrConflict:           http.StatusConflict,
	ErrInsufficientStock:  http.StatusBadRequest,
	ErrOutOfStock:         http.StatusBadRequest,
	ErrBelowMinimumOrder:  http.StatusBadRequest,
	ErrInvalidOrderStatus: http.StatusBadRequest,
	ErrInvalidOTP:         http.StatusUnauthorized,
	ErrInvalidPassword:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrForbidden:          "0005",
	ErrConflict:           "0006",
	ErrInsufficientStock:  "0007",
	ErrOutOfStock:         "0008",
	ErrBelowMinimumOrder:  "0009",
	ErrInvalidOrderStatus: "0010",
	ErrInvalidOTP:         "0011",
	ErrInvalidPassword:    "0012",
}
