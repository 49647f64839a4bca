package analytics

import (
	"context"
	"net/http"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
	"github.com/rewardplus/loyalty/pkg/utils"
)

type Service interface {
	ProgramSummary(ctx context.Context) (*domain.ProgramSummary, error)
	TierDistribution(ctx context.Context) (map[string]int64, error)
	RedemptionTrends(ctx context.Context) (*domain.RedemptionTrends, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// ProgramSummary godoc
//
//	@Summary		Program summary
//	@Description	Program-wide counters: customers, accounts, transactions, rewards, promotions, redemptions.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProgramSummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/summary [get]
func (h *AnalyticsHandler) ProgramSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.ProgramSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProgramSummaryResponseDTO{
		TotalCustomers:        summary.TotalCustomers,
		ActiveCustomers:       summary.ActiveCustomers,
		SuspendedCustomers:    summary.SuspendedCustomers,
		TierDistribution:      summary.TierDistribution,
		ActiveLedgerAccounts:  summary.ActiveLedgerAccounts,
		TotalTransactions:     summary.TotalTransactions,
		CompletedTransactions: summary.CompletedTransactions,
		TotalRevenue:          summary.TotalRevenue,
		TotalRewards:          summary.TotalRewards,
		ActiveRewards:         summary.ActiveRewards,
		TotalPromotions:       summary.TotalPromotions,
		ActivePromotions:      summary.ActivePromotions,
		TotalRedemptions:      summary.TotalRedemptions,
		CompletedRedemptions:  summary.CompletedRedemptions,
	})
}

// TierDistribution godoc
//
//	@Summary		Tier distribution
//	@Description	Customer count per loyalty tier. Every tier is present, empty tiers report zero.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/tiers [get]
func (h *AnalyticsHandler) TierDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.analyticsService.TierDistribution(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, distribution)
}

// RedemptionTrends godoc
//
//	@Summary		Redemption trends
//	@Description	Redemption counts by status and channel plus the most redeemed rewards.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RedemptionTrendsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/redemptions [get]
func (h *AnalyticsHandler) RedemptionTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.analyticsService.RedemptionTrends(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	topRewards := make([]dto.TopRewardDTO, len(trends.TopRewards))
	for i, reward := range trends.TopRewards {
		topRewards[i] = dto.TopRewardDTO{
			RewardID:         reward.RewardID,
			Name:             reward.Name,
			QuantityRedeemed: reward.QuantityRedeemed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionTrendsResponseDTO{
		TotalRedemptions: trends.TotalRedemptions,
		ByStatus:         trends.ByStatus,
		ByChannel:        trends.ByChannel,
		TopRewards:       topRewards,
	})
}
