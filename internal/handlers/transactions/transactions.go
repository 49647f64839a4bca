package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
	"github.com/rewardplus/loyalty/pkg/utils"
)

type Service interface {
	RecordPurchase(ctx context.Context, customerID int64, amount, discount float64, storeCode string) (*domain.Transaction, error)
	GetByCode(ctx context.Context, code string) (*domain.Transaction, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
	validate           *validator.Validate
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		validate:           validator.New(),
	}
}

func transactionResponse(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:                 t.ID,
		TransactionCode:    t.TransactionCode,
		CustomerID:         t.CustomerID,
		Amount:             t.Amount,
		DiscountApplied:    t.DiscountApplied,
		NetAmount:          t.NetAmount,
		PointsEarned:       t.PointsEarned,
		AppliedPromotionID: t.AppliedPromotionID,
		Status:             string(t.Status),
		StoreCode:          t.StoreCode,
		TransactionDate:    t.TransactionDate,
	}
}

// RecordPurchase godoc
//
//	@Summary		Record a purchase
//	@Description	Record a purchase, apply the best matching promotion and credit the earned points.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	transaction, err := h.transactionService.RecordPurchase(r.Context(), req.CustomerID, req.Amount, req.Discount, req.StoreCode)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionResponse(transaction))
}

// GetTransaction godoc
//
//	@Summary		Get transaction by code
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Transaction code"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{code} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	transaction, err := h.transactionService.GetByCode(r.Context(), code)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionResponse(transaction))
}

// ListByCustomer godoc
//
//	@Summary		List customer transactions
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		int	true	"Customer ID"
//	@Success		200			{array}		dto.TransactionResponseDTO
//	@Success		204			"No transactions"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/transactions [get]
func (h *TransactionHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	transactions, err := h.transactionService.ListByCustomer(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i := range transactions {
		response[i] = transactionResponse(&transactions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
