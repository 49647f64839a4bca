package dto

type ProgramSummaryResponseDTO struct {
	TotalCustomers        int64            `json:"total_customers" example:"1200"`
	ActiveCustomers       int64            `json:"active_customers" example:"1140"`
	SuspendedCustomers    int64            `json:"suspended_customers" example:"15"`
	TierDistribution      map[string]int64 `json:"tier_distribution"`
	ActiveLedgerAccounts  int64            `json:"active_ledger_accounts" example:"1140"`
	TotalTransactions     int64            `json:"total_transactions" example:"5400"`
	CompletedTransactions int64            `json:"completed_transactions" example:"5320"`
	TotalRevenue          float64          `json:"total_revenue" example:"248300.50"`
	TotalRewards          int64            `json:"total_rewards" example:"25"`
	ActiveRewards         int64            `json:"active_rewards" example:"18"`
	TotalPromotions       int64            `json:"total_promotions" example:"12"`
	ActivePromotions      int64            `json:"active_promotions" example:"4"`
	TotalRedemptions      int64            `json:"total_redemptions" example:"830"`
	CompletedRedemptions  int64            `json:"completed_redemptions" example:"640"`
}

type RedemptionTrendsResponseDTO struct {
	TotalRedemptions int64            `json:"total_redemptions" example:"830"`
	ByStatus         map[string]int64 `json:"by_status"`
	ByChannel        map[string]int64 `json:"by_channel"`
	TopRewards       []TopRewardDTO   `json:"top_rewards"`
}

type TopRewardDTO struct {
	RewardID         int64  `json:"reward_id" example:"3"`
	Name             string `json:"name" example:"Free coffee"`
	QuantityRedeemed int64  `json:"quantity_redeemed" example:"120"`
}
