// Package apperr defines the domain error taxonomy returned by the core
// services. All errors here are terminal: the core never retries, callers
// decide. Storage failures are not part of the taxonomy and propagate as
// opaque wrapped errors so callers can tell a violated business rule from a
// broken system.
package apperr

import "fmt"

type NotFoundError struct {
	EntityKind string
	Key        any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.EntityKind, e.Key)
}

func NotFound(entityKind string, key any) *NotFoundError {
	return &NotFoundError{EntityKind: entityKind, Key: key}
}

type InsufficientBalanceError struct {
	CustomerID int64
	Available  int64
	Required   int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for customer %d: available %d, required %d",
		e.CustomerID, e.Available, e.Required)
}

func InsufficientBalance(customerID, available, required int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{CustomerID: customerID, Available: available, Required: required}
}

type RewardUnavailableError struct {
	RewardID int64
}

func (e *RewardUnavailableError) Error() string {
	return fmt.Sprintf("reward %d is not available for redemption", e.RewardID)
}

func RewardUnavailable(rewardID int64) *RewardUnavailableError {
	return &RewardUnavailableError{RewardID: rewardID}
}

type InvalidStateTransitionError struct {
	RedemptionID int64
	From         string
	To           string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("redemption %d: invalid transition %s -> %s", e.RedemptionID, e.From, e.To)
}

func InvalidStateTransition(redemptionID int64, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{RedemptionID: redemptionID, From: from, To: to}
}

type DuplicateCodeError struct {
	Kind string
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s code already exists: %s", e.Kind, e.Code)
}

func DuplicateCode(kind, code string) *DuplicateCodeError {
	return &DuplicateCodeError{Kind: kind, Code: code}
}
