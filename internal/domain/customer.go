package domain

import "time"

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "ACTIVE"
	CustomerInactive  CustomerStatus = "INACTIVE"
	CustomerSuspended CustomerStatus = "SUSPENDED"
)

type CustomerTier string

const (
	TierBronze   CustomerTier = "BRONZE"
	TierSilver   CustomerTier = "SILVER"
	TierGold     CustomerTier = "GOLD"
	TierPlatinum CustomerTier = "PLATINUM"
	TierDiamond  CustomerTier = "DIAMOND"
)

// AllTiers lists the tiers in ascending rank order.
var AllTiers = []CustomerTier{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}

var tierRanks = map[CustomerTier]int{
	TierBronze:   1,
	TierSilver:   2,
	TierGold:     3,
	TierPlatinum: 4,
	TierDiamond:  5,
}

// Rank returns the ordinal position of the tier. Unknown tiers rank 0,
// below BRONZE.
func (t CustomerTier) Rank() int {
	return tierRanks[t]
}

type Customer struct {
	ID             int64          `db:"id"`
	CustomerCode   string         `db:"customer_code"`
	CardNumber     string         `db:"card_number"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	Email          string         `db:"email"`
	Phone          string         `db:"phone"`
	DateOfBirth    time.Time      `db:"date_of_birth"`
	Gender         string         `db:"gender"`
	City           string         `db:"city"`
	State          string         `db:"state"`
	Tier           CustomerTier   `db:"tier"`
	Status         CustomerStatus `db:"status"`
	EnrollmentDate time.Time      `db:"enrollment_date"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Age in whole years at the given instant.
func (c *Customer) Age(now time.Time) int {
	if c.DateOfBirth.IsZero() {
		return 0
	}
	age := now.Year() - c.DateOfBirth.Year()
	if now.YearDay() < c.DateOfBirth.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// CustomerSnapshot is the slice of customer state the promotion eligibility
// predicate reads. Derived once per request so the predicate stays pure.
type CustomerSnapshot struct {
	CustomerID int64
	Tier       CustomerTier
	Age        int
	Gender     string
	City       string
	State      string
}

func (c *Customer) Snapshot(now time.Time) CustomerSnapshot {
	return CustomerSnapshot{
		CustomerID: c.ID,
		Tier:       c.Tier,
		Age:        c.Age(now),
		Gender:     c.Gender,
		City:       c.City,
		State:      c.State,
	}
}
