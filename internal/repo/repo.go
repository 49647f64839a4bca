package repo

import (
	"github.com/rewardplus/loyalty/internal/pg"
	analyticsrepo "github.com/rewardplus/loyalty/internal/repo/analytics-repo"
	customerrepo "github.com/rewardplus/loyalty/internal/repo/customer-repo"
	ledgerrepo "github.com/rewardplus/loyalty/internal/repo/ledger-repo"
	promotionrepo "github.com/rewardplus/loyalty/internal/repo/promotion-repo"
	redemptionrepo "github.com/rewardplus/loyalty/internal/repo/redemption-repo"
	rewardrepo "github.com/rewardplus/loyalty/internal/repo/reward-repo"
	staffrepo "github.com/rewardplus/loyalty/internal/repo/staff-repo"
	transactionrepo "github.com/rewardplus/loyalty/internal/repo/transaction-repo"
)

// Repositories holds the concrete repositories. Services declare their own
// narrow interfaces; the concrete types here satisfy all of them.
type Repositories struct {
	StaffRepo       *staffrepo.Repository
	CustomerRepo    *customerrepo.Repository
	LedgerRepo      *ledgerrepo.Repository
	PromotionRepo   *promotionrepo.Repository
	RewardRepo      *rewardrepo.Repository
	RedemptionRepo  *redemptionrepo.Repository
	TransactionRepo *transactionrepo.Repository
	AnalyticsRepo   *analyticsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		StaffRepo:       staffrepo.New(conn),
		CustomerRepo:    customerrepo.New(conn),
		LedgerRepo:      ledgerrepo.New(conn, txManager),
		PromotionRepo:   promotionrepo.New(conn, txManager),
		RewardRepo:      rewardrepo.New(conn, txManager),
		RedemptionRepo:  redemptionrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		AnalyticsRepo:   analyticsrepo.New(conn),
	}
}
