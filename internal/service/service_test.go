package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/config"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/internal/repo"
	"github.com/rewardplus/loyalty/pkg/clock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	cfg := &config.Config{
		PointsEarnRate:    10,
		WelcomeBonus:      100,
		RedemptionTTLDays: 90,
	}

	services := New(repos, mockTxManager, cfg, clock.New())

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CustomerService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.PromotionService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.RedemptionService)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.AnalyticsService)
}
