package settingsservice

import (
	"context"

	"github.com/washhub/washhub/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetOrderCharges(ctx context.Context) (*domain.OrderCharges, error)
	UpdateOrderCharges(ctx context.Context, charges *domain.OrderCharges) error
	GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error)
	UpdateWalletSettings(ctx context.Context, settings *domain.WalletSettings) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// UpdateChargesInput carries a partial update; nil fields keep the stored value.
type UpdateChargesInput struct {
	CancellationPercentage *float64
	CustomerUnavailable    *float64
	IncorrectAddress       *float64
	RefusalToAccept        *float64
}

type UpdateWalletSettingsInput struct {
	PointsPerRupee        *float64
	MinRedeemPoints       *int
	ReferralPoints        *int
	SignupBonusPoints     *int
	OrderCompletionPoints *int
	MinOrderPrice         *float64
}

func (s *Service) GetOrderCharges(ctx context.Context) (*domain.OrderCharges, error) {
	charges, err := s.repo.GetOrderCharges(ctx)
	if err != nil {
		zap.L().Error("failed to get order charges", zap.Error(err))
		return nil, err
	}
	return charges, nil
}

func (s *Service) UpdateOrderCharges(ctx context.Context, in UpdateChargesInput) (*domain.OrderCharges, error) {
	charges, err := s.repo.GetOrderCharges(ctx)
	if err != nil {
		return nil, err
	}

	if in.CancellationPercentage != nil {
		charges.CancellationPercentage = *in.CancellationPercentage
	}
	if in.CustomerUnavailable != nil {
		charges.CustomerUnavailable = *in.CustomerUnavailable
	}
	if in.IncorrectAddress != nil {
		charges.IncorrectAddress = *in.IncorrectAddress
	}
	if in.RefusalToAccept != nil {
		charges.RefusalToAccept = *in.RefusalToAccept
	}

	if err := s.repo.UpdateOrderCharges(ctx, charges); err != nil {
		zap.L().Error("failed to update order charges", zap.Error(err))
		return nil, err
	}
	return charges, nil
}

func (s *Service) GetWalletSettings(ctx context.Context) (*domain.WalletSettings, error) {
	settings, err := s.repo.GetWalletSettings(ctx)
	if err != nil {
		zap.L().Error("failed to get wallet settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *Service) UpdateWalletSettings(ctx context.Context, in UpdateWalletSettingsInput) (*domain.WalletSettings, error) {
	settings, err := s.repo.GetWalletSettings(ctx)
	if err != nil {
		return nil, err
	}

	if in.PointsPerRupee != nil {
		settings.PointsPerRupee = *in.PointsPerRupee
	}
	if in.MinRedeemPoints != nil {
		settings.MinRedeemPoints = *in.MinRedeemPoints
	}
	if in.ReferralPoints != nil {
		settings.ReferralPoints = *in.ReferralPoints
	}
	if in.SignupBonusPoints != nil {
		settings.SignupBonusPoints = *in.SignupBonusPoints
	}
	if in.OrderCompletionPoints != nil {
		settings.OrderCompletionPoints = *in.OrderCompletionPoints
	}
	if in.MinOrderPrice != nil {
		settings.MinOrderPrice = *in.MinOrderPrice
	}

	if err := s.repo.UpdateWalletSettings(ctx, settings); err != nil {
		zap.L().Error("failed to update wallet settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}
