package promotions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
	"github.com/rewardplus/loyalty/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	GetActive(ctx context.Context) ([]domain.Promotion, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PromotionStatus) (*domain.Promotion, error)
}

type PromotionHandler struct {
	promotionService Service
	validate         *validator.Validate
}

func New(promotionService Service) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
		validate:         validator.New(),
	}
}

func promotionResponse(p *domain.Promotion) dto.PromotionResponseDTO {
	return dto.PromotionResponseDTO{
		ID:                    p.ID,
		PromotionCode:         p.PromotionCode,
		Name:                  p.Name,
		Status:                string(p.Status),
		StartDate:             p.StartDate,
		EndDate:               p.EndDate,
		BonusPointsMultiplier: p.BonusPointsMultiplier,
		BonusPointsFixed:      p.BonusPointsFixed,
		UsageCount:            p.UsageCount,
		UsageLimit:            p.UsageLimit,
	}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create godoc
//
//	@Summary		Create a promotion
//	@Description	Create a promotion in DRAFT status. Targeting criteria are optional; unset criteria match everyone.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromotionRequestDTO	true	"Promotion payload"
//	@Success		200		{object}	dto.PromotionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Promotion code already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/promotions [post]
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromotionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
		return
	}

	promotion := &domain.Promotion{
		Name:                    req.Name,
		Description:             req.Description,
		PromotionCode:           req.PromotionCode,
		PromotionType:           req.PromotionType,
		StartDate:               startDate,
		EndDate:                 endDate,
		BonusPointsMultiplier:   req.BonusPointsMultiplier,
		BonusPointsFixed:        req.BonusPointsFixed,
		MinimumPurchaseAmount:   req.MinimumPurchaseAmount,
		UsageLimit:              req.UsageLimit,
		UsageLimitPerCustomer:   req.UsageLimitPerCustomer,
		MinimumAge:              req.MinimumAge,
		MaximumAge:              req.MaximumAge,
		TargetGender:            req.TargetGender,
		TargetCity:              req.TargetCity,
		TargetState:             req.TargetState,
		ExclusiveToNewCustomers: req.ExclusiveToNewCustomers,
	}
	if req.MinimumTier != nil {
		tier := domain.CustomerTier(*req.MinimumTier)
		promotion.MinimumTier = &tier
	}

	created, err := h.promotionService.Create(r.Context(), promotion)
	if err != nil {
		var duplicate *apperr.DuplicateCodeError
		if errors.As(err, &duplicate) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, promotionResponse(created))
}

// ListActive godoc
//
//	@Summary		List active promotions
//	@Description	List promotions currently valid, in deterministic id order.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PromotionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/promotions [get]
func (h *PromotionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.promotionService.GetActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PromotionResponseDTO, len(promotions))
	for i := range promotions {
		response[i] = promotionResponse(&promotions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPromotion godoc
//
//	@Summary		Get promotion
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			promotionID	path		int	true	"Promotion ID"
//	@Success		200			{object}	dto.PromotionResponseDTO
//	@Failure		404			{object}	utils.Response	"Promotion not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/promotions/{promotionID} [get]
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "promotionID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid promotion id")
		return
	}
	promotion, err := h.promotionService.GetByID(r.Context(), id)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, promotionResponse(promotion))
}

// UpdateStatus godoc
//
//	@Summary		Update promotion status
//	@Description	Move a promotion through its lifecycle (DRAFT, SCHEDULED, ACTIVE, PAUSED, EXPIRED, CANCELLED).
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			promotionID	path		int									true	"Promotion ID"
//	@Param			request		body		dto.UpdatePromotionStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.PromotionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Promotion not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/promotions/{promotionID}/status [put]
func (h *PromotionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "promotionID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid promotion id")
		return
	}
	var req dto.UpdatePromotionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	promotion, err := h.promotionService.UpdateStatus(r.Context(), id, domain.PromotionStatus(req.Status))
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, promotionResponse(promotion))
}
