package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vapehero/wholesale-backend/application/auth"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	redismocks "github.com/vapehero/wholesale-backend/mocks/repository/redis"
	usermocks "github.com/vapehero/wholesale-backend/mocks/repository/user"
	smsmocks "github.com/vapehero/wholesale-backend/mocks/thirdparty/sms"
	notifiermocks "github.com/vapehero/wholesale-backend/mocks/thirdparty/notifier"
	"github.com/vapehero/wholesale-backend/model"
	cerr "github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type authFields struct {
	config     *config.Config
	userRepo   *usermocks.UserRepository
	redisRepo  *redismocks.Repository
	smsGateway *smsmocks.Gateway
	notifier   *notifiermocks.Publisher
}

func newAuthFields(t *testing.T) authFields {
	return authFields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
				OTPExpiration:  5 * time.Minute,
				OTPTestMode:    false,
				OTPTestCode:    "55555",
			},
		},
		userRepo:   usermocks.NewUserRepository(t),
		redisRepo:  redismocks.NewRepository(t),
		smsGateway: smsmocks.NewGateway(t),
		notifier:   notifiermocks.NewPublisher(t),
	}
}

func newAuthApp(f authFields) auth.AuthApp {
	return auth.NewAuthApp(f.config, f.userRepo, f.redisRepo, f.smsGateway, f.notifier)
}

func TestAuthApp_SendOTP(t *testing.T) {
	t.Run("success: stores the code and sends the sms", func(t *testing.T) {
		f := newAuthFields(t)
		f.redisRepo.On("SetOTP", mock.Anything, "09120000001", mock.Anything, 5*time.Minute).Return(nil).Once()
		f.smsGateway.On("SendOTP", mock.Anything, "09120000001", mock.Anything).Return(nil).Once()

		app := newAuthApp(f)
		if err := app.SendOTP(context.Background(), &model.SendOTPRequest{Phone: "09120000001"}); err != nil {
			t.Fatalf("SendOTP() error = %v", err)
		}
	})

	t.Run("test mode stores the fixed code and skips the sms", func(t *testing.T) {
		f := newAuthFields(t)
		f.config.Auth.OTPTestMode = true
		f.redisRepo.On("SetOTP", mock.Anything, "09120000001", "55555", 5*time.Minute).Return(nil).Once()

		app := newAuthApp(f)
		if err := app.SendOTP(context.Background(), &model.SendOTPRequest{Phone: "09120000001"}); err != nil {
			t.Fatalf("SendOTP() error = %v", err)
		}
	})
}

func TestAuthApp_VerifyOTP(t *testing.T) {
	existing := &model.UserEntity{
		ID:       1,
		Phone:    "09120000001",
		Role:     constant.UserRoleUser,
		Status:   constant.UserStatusActive,
		VIPLevel: constant.VIPLevelGold,
	}

	tests := []struct {
		name     string
		args     *model.VerifyOTPRequest
		testMode bool
		mockCall func(f authFields)
		wantErr  bool
		errCode  constant.ErrorType
		wantUser uint64
	}{
		{
			name: "success: existing buyer logs in",
			args: &model.VerifyOTPRequest{Phone: "09120000001", Code: "12345"},
			mockCall: func(f authFields) {
				f.redisRepo.On("GetOTP", mock.Anything, "09120000001").Return("12345", nil).Once()
				f.redisRepo.On("DeleteOTP", mock.Anything, "09120000001").Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "09120000001"}).
					Return(existing, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
			},
			wantUser: 1,
		},
		{
			name: "success: first login creates a pending account",
			args: &model.VerifyOTPRequest{Phone: "09120000002", Code: "12345"},
			mockCall: func(f authFields) {
				f.redisRepo.On("GetOTP", mock.Anything, "09120000002").Return("12345", nil).Once()
				f.redisRepo.On("DeleteOTP", mock.Anything, "09120000002").Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "09120000002"}).
					Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Phone == "09120000002" &&
						u.Status == constant.UserStatusPending &&
						u.VIPLevel == constant.VIPLevelBronze
				})).Return(&model.UserEntity{
					ID: 2, Phone: "09120000002",
					Role: constant.UserRoleUser, Status: constant.UserStatusPending,
					VIPLevel: constant.VIPLevelBronze,
				}, nil).Once()
				f.notifier.On("Publish", constant.TopicAdmin, mock.Anything).Return().Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(2), time.Hour).Return(nil).Once()
			},
			wantUser: 2,
		},
		{
			name: "error: wrong code",
			args: &model.VerifyOTPRequest{Phone: "09120000001", Code: "00000"},
			mockCall: func(f authFields) {
				f.redisRepo.On("GetOTP", mock.Anything, "09120000001").Return("12345", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name:     "test mode accepts the fixed code without a stored one",
			args:     &model.VerifyOTPRequest{Phone: "09120000001", Code: "55555"},
			testMode: true,
			mockCall: func(f authFields) {
				f.redisRepo.On("GetOTP", mock.Anything, "09120000001").Return("", errors.New("redis: nil")).Once()
				f.redisRepo.On("DeleteOTP", mock.Anything, "09120000001").Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "09120000001"}).
					Return(existing, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
			},
			wantUser: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFields(t)
			f.config.Auth.OTPTestMode = tt.testMode
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newAuthApp(f)

			got, err := app.VerifyOTP(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Fatal("Token should not be empty")
			}
			if got.User.ID != tt.wantUser {
				t.Fatalf("User.ID = %d, want %d", got.User.ID, tt.wantUser)
			}
		})
	}
}

func TestAuthApp_AdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	admin := &model.UserEntity{
		ID:           10,
		Email:        "ops@example.com",
		Role:         constant.UserRoleAdmin,
		Status:       constant.UserStatusActive,
		PasswordHash: string(hash),
	}

	tests := []struct {
		name     string
		args     *model.AdminLoginRequest
		mockCall func(f authFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			args: &model.AdminLoginRequest{Email: "ops@example.com", Password: "correct-horse"},
			mockCall: func(f authFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ops@example.com"}).
					Return(admin, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(10), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: wrong password",
			args: &model.AdminLoginRequest{Email: "ops@example.com", Password: "wrong"},
			mockCall: func(f authFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ops@example.com"}).
					Return(admin, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: buyers cannot use the admin door",
			args: &model.AdminLoginRequest{Email: "buyer@example.com", Password: "whatever"},
			mockCall: func(f authFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "buyer@example.com"}).
					Return(&model.UserEntity{ID: 3, Role: constant.UserRoleUser}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: unknown email",
			args: &model.AdminLoginRequest{Email: "nobody@example.com", Password: "whatever"},
			mockCall: func(f authFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newAuthApp(f)

			got, err := app.AdminLogin(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdminLogin() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Fatal("Token should not be empty")
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	t.Run("roundtrip: an issued token validates back to the same user", func(t *testing.T) {
		f := newAuthFields(t)
		f.redisRepo.On("GetOTP", mock.Anything, "09120000001").Return("12345", nil).Once()
		f.redisRepo.On("DeleteOTP", mock.Anything, "09120000001").Return(nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "09120000001"}).
			Return(&model.UserEntity{
				ID: 1, Phone: "09120000001",
				Role: constant.UserRoleUser, Status: constant.UserStatusActive,
			}, nil).Once()
		f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
		f.redisRepo.On("GetSession", mock.Anything, mock.Anything).Return(uint64(1), nil).Once()

		app := newAuthApp(f)
		resp, err := app.VerifyOTP(context.Background(), &model.VerifyOTPRequest{Phone: "09120000001", Code: "12345"})
		if err != nil {
			t.Fatalf("VerifyOTP() error = %v", err)
		}

		userID, role, err := app.ValidateToken(context.Background(), resp.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 {
			t.Fatalf("userID = %d, want 1", userID)
		}
		if role != constant.UserRoleUser {
			t.Fatalf("role = %s, want %s", role, constant.UserRoleUser)
		}
	})

	t.Run("error: revoked session is refused", func(t *testing.T) {
		f := newAuthFields(t)
		f.redisRepo.On("GetOTP", mock.Anything, "09120000001").Return("12345", nil).Once()
		f.redisRepo.On("DeleteOTP", mock.Anything, "09120000001").Return(nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "09120000001"}).
			Return(&model.UserEntity{
				ID: 1, Phone: "09120000001",
				Role: constant.UserRoleUser, Status: constant.UserStatusActive,
			}, nil).Once()
		f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
		f.redisRepo.On("GetSession", mock.Anything, mock.Anything).Return(uint64(0), errors.New("redis: nil")).Once()

		app := newAuthApp(f)
		resp, err := app.VerifyOTP(context.Background(), &model.VerifyOTPRequest{Phone: "09120000001", Code: "12345"})
		if err != nil {
			t.Fatalf("VerifyOTP() error = %v", err)
		}

		_, _, err = app.ValidateToken(context.Background(), resp.Token)
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUnauthorize] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrUnauthorize])
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newAuthFields(t)
		app := newAuthApp(f)

		_, _, err := app.ValidateToken(context.Background(), "not-a-token")
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUnauthorize] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrUnauthorize])
		}
	})
}
