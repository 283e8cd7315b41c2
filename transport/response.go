package transport

import (
	"encoding/json"
	"net/http"

	goerrors "errors"

	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/utils/errors"
)

type successResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Available *int64 `json:"available,omitempty"`
	Requested *int64 `json:"requested,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successResponse{Data: data})
}

// writeError maps application errors onto the HTTP surface. Stock shortages
// carry the available/requested numbers so the storefront can adjust the cart
// without another round trip.
func writeError(w http.ResponseWriter, err error) {
	var stockErr errors.InsufficientStockError
	if goerrors.As(err, &stockErr) {
		writeJSON(w, stockErr.ErrorHTTPCode(), errorResponse{
			Error:     stockErr.Error(),
			Code:      stockErr.ErrorCode(),
			Available: &stockErr.Available,
			Requested: &stockErr.Requested,
		})
		return
	}

	var customErr errors.CustomError
	if goerrors.As(err, &customErr) {
		writeJSON(w, customErr.ErrorHTTPCode(), errorResponse{
			Error: customErr.Error(),
			Code:  customErr.ErrorCode(),
		})
		return
	}

	internal := errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, internal.ErrorHTTPCode(), errorResponse{
		Error: internal.Error(),
		Code:  internal.ErrorCode(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
