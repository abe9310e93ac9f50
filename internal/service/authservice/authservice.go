package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

var (
	ErrPhoneAlreadyExists = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")
)

type Repo interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	CreateReferralCode(ctx context.Context, customerID int, code string) error
}

type Ledger interface {
	Adjust(ctx context.Context, customerID int, field string, delta float64, reason, actor string) (float64, float64, error)
}

type Settings interface {
	GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error)
}

// SMSSender is the boundary to the external SMS gateway.
type SMSSender interface {
	Send(ctx context.Context, phone, code string) error
}

type Service struct {
	repo     Repo
	ledger   Ledger
	settings Settings
	hash     auth.HashServiceInterface
	jwt      auth.JWTServiceInterface
	sms      SMSSender
}

func New(repo Repo, ledger Ledger, settings Settings, hash auth.HashServiceInterface, jwt auth.JWTServiceInterface, sms SMSSender) *Service {
	return &Service{
		repo:     repo,
		ledger:   ledger,
		settings: settings,
		hash:     hash,
		jwt:      jwt,
		sms:      sms,
	}
}

// Register creates the customer, issues their referral code and credits the
// signup bonus. Bonus failures are logged; the account still exists.
func (s *Service) Register(ctx context.Context, phone, name, password, referredBy string) (*domain.Customer, error) {
	existing, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneAlreadyExists
	}

	hash, err := s.hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.Create(ctx, &domain.Customer{
		Phone:        phone,
		Name:         name,
		PasswordHash: hash,
		ReferredBy:   referredBy,
	})
	if err != nil {
		zap.L().Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	if code, err := generateReferralCode(); err != nil {
		zap.L().Error("failed to generate referral code", zap.Int("customerID", customer.ID), zap.Error(err))
	} else if err := s.repo.CreateReferralCode(ctx, customer.ID, code); err != nil {
		zap.L().Error("failed to create referral code", zap.Int("customerID", customer.ID), zap.Error(err))
	}

	settings, err := s.settings.GetWalletSettings(ctx)
	if err != nil {
		zap.L().Error("failed to load wallet settings, skipping signup bonus", zap.Error(err))
		return customer, nil
	}
	_, _, err = s.ledger.Adjust(ctx, customer.ID, "points", float64(settings.SignupBonusPoints), "Signup bonus", "System")
	if err != nil {
		zap.L().Error("failed to award signup bonus", zap.Int("customerID", customer.ID), zap.Error(err))
	}

	return customer, nil
}

func (s *Service) Login(ctx context.Context, phone, password string) (string, error) {
	customer, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return "", err
	}
	if customer == nil || !s.hash.ComparePassword(customer.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateJWT(customer.ID, auth.RoleCustomer, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// RequestOTP generates a login code and hands it to the SMS gateway. A
// gateway failure is logged and the request still reports the code as
// generated.
func (s *Service) RequestOTP(ctx context.Context, phone string) error {
	code := generateOTP()
	if err := s.sms.Send(ctx, phone, code); err != nil {
		zap.L().Error("sms send failed, otp generated but not delivered", zap.String("phone", phone), zap.Error(err))
	}
	return nil
}

const referralCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReferralCode fails rather than fall back to a fixed string: the
// referral_codes.code column is unique and a constant would collide.
func generateReferralCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = referralCharset[int(buf[i])%len(referralCharset)]
	}
	return string(buf), nil
}

func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
