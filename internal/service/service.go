package service

import (
	"github.com/rewardplus/loyalty/internal/handlers/analytics"
	"github.com/rewardplus/loyalty/internal/handlers/auth"
	"github.com/rewardplus/loyalty/internal/handlers/customers"
	"github.com/rewardplus/loyalty/internal/handlers/points"
	"github.com/rewardplus/loyalty/internal/handlers/promotions"
	"github.com/rewardplus/loyalty/internal/handlers/redemptions"
	"github.com/rewardplus/loyalty/internal/handlers/rewards"
	"github.com/rewardplus/loyalty/internal/handlers/transactions"

	pkgauth "github.com/rewardplus/loyalty/pkg/auth"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/keymutex"

	"github.com/rewardplus/loyalty/internal/config"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/internal/repo"
	"github.com/rewardplus/loyalty/internal/service/analyticsservice"
	"github.com/rewardplus/loyalty/internal/service/authservice"
	"github.com/rewardplus/loyalty/internal/service/customerservice"
	"github.com/rewardplus/loyalty/internal/service/ledgerservice"
	"github.com/rewardplus/loyalty/internal/service/promotionservice"
	"github.com/rewardplus/loyalty/internal/service/redemptionservice"
	"github.com/rewardplus/loyalty/internal/service/rewardservice"
	"github.com/rewardplus/loyalty/internal/service/transactionservice"
)

type Services struct {
	AuthService        auth.Service
	CustomerService    customers.Service
	LedgerService      points.Service
	PromotionService   promotions.Service
	RewardService      rewards.Service
	RedemptionService  redemptions.Service
	TransactionService transactions.Service
	AnalyticsService   analytics.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config, clk clock.Clock) *Services {
	// One lock registry for every service that mutates a customer's account,
	// so a redemption and a purchase for the same customer never interleave.
	locks := keymutex.New()

	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager, locks, clk)
	promotionService := promotionservice.New(repo.PromotionRepo, clk)
	rewardService := rewardservice.New(repo.RewardRepo, clk)
	customerService := customerservice.New(repo.CustomerRepo, ledgerService, clk, cfg.WelcomeBonus)
	transactionService := transactionservice.New(
		repo.TransactionRepo, repo.CustomerRepo, promotionService, ledgerService,
		txManager, locks, clk, cfg.PointsEarnRate,
	)
	redemptionService := redemptionservice.New(
		repo.RedemptionRepo, repo.CustomerRepo, repo.RewardRepo, ledgerService,
		txManager, locks, clk, cfg.RedemptionTTLDays,
	)
	authService := authservice.New(repo.StaffRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	analyticsService := analyticsservice.New(repo.AnalyticsRepo)

	return &Services{
		AuthService:        authService,
		CustomerService:    customerService,
		LedgerService:      ledgerService,
		PromotionService:   promotionService,
		RewardService:      rewardService,
		RedemptionService:  redemptionService,
		TransactionService: transactionService,
		AnalyticsService:   analyticsService,
	}
}
