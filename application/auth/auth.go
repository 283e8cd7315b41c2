package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	redisrepo "github.com/vapehero/wholesale-backend/repository/redis"
	userrepo "github.com/vapehero/wholesale-backend/repository/user"
	"github.com/vapehero/wholesale-backend/thirdparty/notifier"
	"github.com/vapehero/wholesale-backend/thirdparty/sms"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp handles phone-number OTP login for buyers and password login for
// admins. A successful login mints a JWT whose jti is mirrored into a Redis
// session, so tokens can be revoked before their exp.
type AuthApp interface {
	SendOTP(ctx context.Context, req *model.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.AuthResponse, error)
	AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (uint64, constant.UserRole, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uint64) (*model.UserEntity, error)
}

type authAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	redisRepo  redisrepo.Repository
	smsGateway sms.Gateway
	notifier   notifier.Publisher
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository,
	smsGateway sms.Gateway, notif notifier.Publisher) AuthApp {
	return &authAppImpl{
		config:     config,
		userRepo:   userRepo,
		redisRepo:  redisRepo,
		smsGateway: smsGateway,
		notifier:   notif,
	}
}

// SendOTP stores a fresh 5-digit code under the phone number and hands it to
// the SMS gateway. In test mode the fixed code is stored and nothing is sent.
func (s *authAppImpl) SendOTP(ctx context.Context, req *model.SendOTPRequest) error {
	code := s.config.Auth.OTPTestCode
	if !s.config.Auth.OTPTestMode {
		generated, err := generateOTP()
		if err != nil {
			logger.Error("[SendOTP] generate code", zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
		code = generated
	}

	if err := s.redisRepo.SetOTP(ctx, req.Phone, code, s.config.Auth.OTPExpiration); err != nil {
		logger.Error("[SendOTP] store code", zap.String("phone", req.Phone), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.config.Auth.OTPTestMode {
		return nil
	}
	if err := s.smsGateway.SendOTP(ctx, req.Phone, code); err != nil {
		logger.Error("[SendOTP] send sms", zap.String("phone", req.Phone), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// VerifyOTP checks the code and logs the buyer in. First-time phone numbers
// get a pending account that an admin has to approve before ordering.
func (s *authAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.AuthResponse, error) {
	stored, err := s.redisRepo.GetOTP(ctx, req.Phone)
	if err != nil {
		stored = ""
	}
	valid := stored != "" && stored == req.Code
	if !valid && s.config.Auth.OTPTestMode && req.Code == s.config.Auth.OTPTestCode {
		valid = true
	}
	if !valid {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if err := s.redisRepo.DeleteOTP(ctx, req.Phone); err != nil {
		logger.Warn("[VerifyOTP] delete code", zap.String("phone", req.Phone), zap.Error(err))
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[VerifyOTP] get user", zap.String("phone", req.Phone), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &model.UserEntity{
			Phone:    req.Phone,
			Role:     constant.UserRoleUser,
			Status:   constant.UserStatusPending,
			VIPLevel: constant.VIPLevelBronze,
		})
		if err != nil {
			logger.Error("[VerifyOTP] create user", zap.String("phone", req.Phone), zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		s.notifyRegistration(user)
	}

	return s.issueToken(ctx, user)
}

// AdminLogin is the email/password path for back-office accounts.
func (s *authAppImpl) AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[AdminLogin] get user", zap.String("email", req.Email), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || user.Role != constant.UserRoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.issueToken(ctx, user)
}

// ValidateToken returns the identity behind a bearer token. Besides the
// signature and expiry the jti must still have a live Redis session; a nil
// Redis client skips that check so the API stays usable without Redis.
func (s *authAppImpl) ValidateToken(ctx context.Context, token string) (uint64, constant.UserRole, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return 0, "", errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, ok := claims["sub"].(float64)
	if !ok || userID <= 0 {
		return 0, "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return 0, "", errors.SetCustomError(constant.ErrUnauthorize)
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	if sessionUserID != 0 && sessionUserID != uint64(userID) {
		return 0, "", errors.SetCustomError(constant.ErrUnauthorize)
	}

	return uint64(userID), constant.UserRole(role), nil
}

// Logout revokes the token's session. The JWT itself stays valid until exp,
// so on a nil Redis client this is best effort only.
func (s *authAppImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.parseClaims(token)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, jti); err != nil {
		logger.Error("[Logout] delete session", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *authAppImpl) Profile(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Profile] get user", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *authAppImpl) parseClaims(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

func (s *authAppImpl) issueToken(ctx context.Context, user *model.UserEntity) (*model.AuthResponse, error) {
	jti := uuid.NewString()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": string(user.Role),
		"jti":  jti,
		"iat":  now.Unix(),
		"exp":  now.Add(s.config.Auth.JWTExpiration).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		logger.Error("[issueToken] sign token", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[issueToken] store session", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Token: token,
		User: model.AuthUserInfo{
			ID:        user.ID,
			Phone:     user.Phone,
			Name:      user.Name,
			StoreName: user.StoreName,
			Role:      user.Role,
			Status:    user.Status,
			VIPLevel:  user.VIPLevel,
		},
	}, nil
}

func (s *authAppImpl) notifyRegistration(user *model.UserEntity) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(constant.TopicAdmin, notifier.Event{
		ID:          uuid.NewString(),
		Type:        notifier.EventUserReg,
		Title:       "New registration",
		Description: fmt.Sprintf("Phone %s registered and awaits approval", user.Phone),
		Link:        fmt.Sprintf("/admin/users/%d", user.ID),
		UserID:      user.ID,
		Timestamp:   time.Now(),
	})
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}
