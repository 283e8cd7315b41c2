package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	utilsContext "github.com/vapehero/wholesale-backend/utils/context"
	"github.com/vapehero/wholesale-backend/utils/errors"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
)

// SendOTP handler
// @Summary Send login code
// @Description Send a one-time login code to the given phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/auth/otp/send [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.SendOTP(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": "sent"})
}

// VerifyOTP handler
// @Summary Verify login code
// @Description Verify the one-time code and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/auth/otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.VerifyOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogin handler
// @Summary Admin login
// @Description Login with email and password for back-office accounts
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/auth/admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.AdminLogin(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} successResponse
// @Router /api/v1/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")

	if err := s.AuthApp.Logout(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": "logged_out"})
}

// Me handler
// @Summary Current profile
// @Description Return the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEntity
// @Router /api/v1/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	user, err := s.AuthApp.Profile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, user)
}
