package model

import "github.com/vapehero/wholesale-backend/constant"

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,e164|numeric"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,len=5,numeric"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  AuthUserInfo `json:"user"`
}

type AuthUserInfo struct {
	ID        uint64              `json:"id"`
	Phone     string              `json:"phone"`
	Name      string              `json:"name"`
	StoreName string              `json:"store_name"`
	Role      constant.UserRole   `json:"role"`
	Status    constant.UserStatus `json:"status"`
	VIPLevel  constant.VIPLevel   `json:"vip_level"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
