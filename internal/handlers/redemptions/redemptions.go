package redemptions

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
	Redeem(ctx context.Context, customerID, rewardID int64, channel domain.RedemptionChannel, notes *string) (*domain.RedemptionLog, error)
	MarkUsed(ctx context.Context, redemptionID int64) (*domain.RedemptionLog, error)
	Cancel(ctx context.Context, redemptionID int64, reason string) (*domain.RedemptionLog, error)
	GetByID(ctx context.Context, id int64) (*domain.RedemptionLog, error)
	GetByCode(ctx context.Context, code string) (*domain.RedemptionLog, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.RedemptionLog, error)
	Validity(log *domain.RedemptionLog) (expired, usable bool)
}

type RedemptionHandler struct {
	redemptionService Service
	validate          *validator.Validate
}

func New(redemptionService Service) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
		validate:          validator.New(),
	}
}

func (h *RedemptionHandler) redemptionResponse(log *domain.RedemptionLog) dto.RedemptionResponseDTO {
	expired, usable := h.redemptionService.Validity(log)
	return dto.RedemptionResponseDTO{
		ID:             log.ID,
		RedemptionCode: log.RedemptionCode,
		VoucherCode:    log.VoucherCode,
		CustomerID:     log.CustomerID,
		RewardID:       log.RewardID,
		PointsRedeemed: log.PointsRedeemed,
		Status:         string(log.Status),
		Channel:        string(log.Channel),
		RedemptionDate: log.RedemptionDate,
		ExpiryDate:     log.ExpiryDate,
		UsedDate:       log.UsedDate,
		IsExpired:      expired,
		IsValidForUse:  usable,
	}
}

func redemptionIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "redemptionID"), 10, 64)
}

// Redeem godoc
//
//	@Summary		Redeem a reward
//	@Description	Deduct the reward's point cost from the customer's balance and issue a voucher.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient points balance"
//	@Failure		404		{object}	utils.Response	"Customer or reward not found"
//	@Failure		409		{object}	utils.Response	"Reward is not available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions [post]
func (h *RedemptionHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	log, err := h.redemptionService.Redeem(r.Context(), req.CustomerID, req.RewardID, domain.RedemptionChannel(req.Channel), req.Notes)
	if err != nil {
		h.respondRedemptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.redemptionResponse(log))
}

// MarkUsed godoc
//
//	@Summary		Mark a voucher as used
//	@Description	Transition a completed redemption to USED. Expired or already used vouchers are rejected.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			redemptionID	path		int	true	"Redemption ID"
//	@Success		200				{object}	dto.RedemptionResponseDTO
//	@Failure		404				{object}	utils.Response	"Redemption not found"
//	@Failure		409				{object}	utils.Response	"Voucher cannot be used"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions/{redemptionID}/use [post]
func (h *RedemptionHandler) MarkUsed(w http.ResponseWriter, r *http.Request) {
	id, err := redemptionIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid redemption id")
		return
	}
	log, err := h.redemptionService.MarkUsed(r.Context(), id)
	if err != nil {
		h.respondRedemptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.redemptionResponse(log))
}

// Cancel godoc
//
//	@Summary		Cancel a redemption
//	@Description	Cancel a redemption, refund its points and restore reward stock. Used vouchers cannot be cancelled.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			redemptionID	path		int								true	"Redemption ID"
//	@Param			request			body		dto.CancelRedemptionRequestDTO	true	"Cancellation reason"
//	@Success		200				{object}	dto.RedemptionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid request body"
//	@Failure		404				{object}	utils.Response	"Redemption not found"
//	@Failure		409				{object}	utils.Response	"Redemption cannot be cancelled"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions/{redemptionID}/cancel [post]
func (h *RedemptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := redemptionIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid redemption id")
		return
	}
	var req dto.CancelRedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	log, err := h.redemptionService.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		h.respondRedemptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.redemptionResponse(log))
}

// GetRedemption godoc
//
//	@Summary		Get redemption
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			redemptionID	path		int	true	"Redemption ID"
//	@Success		200				{object}	dto.RedemptionResponseDTO
//	@Failure		404				{object}	utils.Response	"Redemption not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions/{redemptionID} [get]
func (h *RedemptionHandler) GetRedemption(w http.ResponseWriter, r *http.Request) {
	id, err := redemptionIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid redemption id")
		return
	}
	log, err := h.redemptionService.GetByID(r.Context(), id)
	if err != nil {
		h.respondRedemptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.redemptionResponse(log))
}

// GetRedemptionByCode godoc
//
//	@Summary		Get redemption by code
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Redemption code"
//	@Success		200		{object}	dto.RedemptionResponseDTO
//	@Failure		404		{object}	utils.Response	"Redemption not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions/code/{code} [get]
func (h *RedemptionHandler) GetRedemptionByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	log, err := h.redemptionService.GetByCode(r.Context(), code)
	if err != nil {
		h.respondRedemptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.redemptionResponse(log))
}

// ListByCustomer godoc
//
//	@Summary		List customer redemptions
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		int	true	"Customer ID"
//	@Success		200			{array}		dto.RedemptionResponseDTO
//	@Success		204			"No redemptions"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/redemptions [get]
func (h *RedemptionHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	logs, err := h.redemptionService.ListByCustomer(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(logs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make([]dto.RedemptionResponseDTO, len(logs))
	for i := range logs {
		response[i] = h.redemptionResponse(&logs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *RedemptionHandler) respondRedemptionError(w http.ResponseWriter, err error) {
	var notFound *apperr.NotFoundError
	var insufficient *apperr.InsufficientBalanceError
	var unavailable *apperr.RewardUnavailableError
	var transition *apperr.InvalidStateTransitionError
	switch {
	case errors.As(err, &notFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.As(err, &unavailable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &transition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
