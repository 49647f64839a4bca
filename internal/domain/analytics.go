package domain

// ProgramSummary aggregates program-wide counters for the manager dashboard.
// Map keys are the enum values as stored in the database.
type ProgramSummary struct {
	TotalCustomers        int64
	ActiveCustomers       int64
	SuspendedCustomers    int64
	TierDistribution      map[string]int64
	ActiveLedgerAccounts  int64
	TotalTransactions     int64
	CompletedTransactions int64
	TotalRevenue          float64
	TotalRewards          int64
	ActiveRewards         int64
	TotalPromotions       int64
	ActivePromotions      int64
	TotalRedemptions      int64
	CompletedRedemptions  int64
}

// RedemptionTrends breaks redemptions down by status and channel and names
// the most redeemed rewards.
type RedemptionTrends struct {
	TotalRedemptions int64
	ByStatus         map[string]int64
	ByChannel        map[string]int64
	TopRewards       []RewardRedemptionCount
}

type RewardRedemptionCount struct {
	RewardID         int64
	Name             string
	QuantityRedeemed int64
}

// TransactionTotals carries the transaction counters computed in one query.
// Revenue sums net amounts of completed transactions only.
type TransactionTotals struct {
	Total     int64
	Completed int64
	Revenue   float64
}
