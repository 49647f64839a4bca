package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
	"github.com/rewardplus/loyalty/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, customerID int64) (*domain.LedgerAccount, error)
	AddPoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error)
	RedeemPoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error)
	AdjustPoints(ctx context.Context, customerID, delta int64) (*domain.LedgerAccount, error)
	ExpirePoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error)
}

type PointsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *PointsHandler {
	return &PointsHandler{
		ledgerService: ledgerService,
	}
}

func customerIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
}

func balanceResponse(account *domain.LedgerAccount) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		CustomerID:       account.CustomerID,
		CurrentBalance:   account.CurrentBalance,
		AvailableBalance: account.AvailableBalance(),
		LifetimePoints:   account.LifetimePoints,
		PointsEarned:     account.PointsEarned,
		PointsRedeemed:   account.PointsRedeemed,
		PointsExpired:    account.PointsExpired,
		PointsAdjusted:   account.PointsAdjusted,
	}
}

// GetBalance godoc
//
//	@Summary		Get customer point balance
//	@Description	Retrieve current, available and lifetime point balances for a customer.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		int	true	"Customer ID"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/points [get]
func (h *PointsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	account, err := h.ledgerService.GetAccount(r.Context(), customerID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceResponse(account))
}

// AddPoints godoc
//
//	@Summary		Credit points
//	@Description	Credit earned points to a customer's ledger account.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int						true	"Customer ID"
//	@Param			request		body		dto.PointsAmountRequestDTO	true	"Points to credit"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/points/add [post]
func (h *PointsHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.PointsAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.ledgerService.AddPoints(r.Context(), customerID, req.Points)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceResponse(account))
}

// RedeemPoints godoc
//
//	@Summary		Debit points
//	@Description	Debit points from a customer's ledger account.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int						true	"Customer ID"
//	@Param			request		body		dto.PointsAmountRequestDTO	true	"Points to debit"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/points/redeem [post]
func (h *PointsHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.PointsAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.ledgerService.RedeemPoints(r.Context(), customerID, req.Points)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceResponse(account))
}

// AdjustPoints godoc
//
//	@Summary		Adjust points
//	@Description	Apply a signed administrative correction to a customer's balance.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int						true	"Customer ID"
//	@Param			request		body		dto.PointsAdjustRequestDTO	true	"Signed delta"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/points/adjust [post]
func (h *PointsHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.PointsAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.ledgerService.AdjustPoints(r.Context(), customerID, req.Delta)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceResponse(account))
}

// ExpirePoints godoc
//
//	@Summary		Expire points
//	@Description	Retire points from a customer's available balance.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int						true	"Customer ID"
//	@Param			request		body		dto.PointsAmountRequestDTO	true	"Points to expire"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/points/expire [post]
func (h *PointsHandler) ExpirePoints(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.PointsAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.ledgerService.ExpirePoints(r.Context(), customerID, req.Points)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceResponse(account))
}

func respondLedgerError(w http.ResponseWriter, err error) {
	var notFound *apperr.NotFoundError
	var insufficient *apperr.InsufficientBalanceError
	switch {
	case errors.As(err, &notFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
