package rewards

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
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetByID(ctx context.Context, id int64) (*domain.Reward, error)
	ListAvailable(ctx context.Context) ([]domain.Reward, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RewardStatus) (*domain.Reward, error)
}

type RewardHandler struct {
	rewardService Service
	validate      *validator.Validate
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		validate:      validator.New(),
	}
}

func rewardResponse(r *domain.Reward) dto.RewardResponseDTO {
	return dto.RewardResponseDTO{
		ID:                r.ID,
		RewardCode:        r.RewardCode,
		Name:              r.Name,
		PointsRequired:    r.PointsRequired,
		RemainingQuantity: r.RemainingQuantity(),
		Status:            string(r.Status),
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
//	@Summary		Create a reward
//	@Description	Add a reward to the catalog. Quantity 0 means unlimited stock.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRewardRequestDTO	true	"Reward payload"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Reward code already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards [post]
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRewardRequestDTO
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
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expiry date")
		return
	}

	reward := &domain.Reward{
		Name:           req.Name,
		Description:    req.Description,
		RewardCode:     req.RewardCode,
		PointsRequired: req.PointsRequired,
		Quantity:       req.Quantity,
		StartDate:      startDate,
		ExpiryDate:     expiryDate,
	}
	created, err := h.rewardService.Create(r.Context(), reward)
	if err != nil {
		var duplicate *apperr.DuplicateCodeError
		if errors.As(err, &duplicate) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rewardResponse(created))
}

// ListAvailable godoc
//
//	@Summary		List available rewards
//	@Description	List rewards currently redeemable: active, in stock and inside their validity window.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards [get]
func (h *RewardHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListAvailable(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.RewardResponseDTO, len(rewards))
	for i := range rewards {
		response[i] = rewardResponse(&rewards[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReward godoc
//
//	@Summary		Get reward
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rewardID	path		int	true	"Reward ID"
//	@Success		200			{object}	dto.RewardResponseDTO
//	@Failure		404			{object}	utils.Response	"Reward not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/{rewardID} [get]
func (h *RewardHandler) GetReward(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "rewardID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reward id")
		return
	}
	reward, err := h.rewardService.GetByID(r.Context(), id)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rewardResponse(reward))
}

// UpdateStatus godoc
//
//	@Summary		Update reward status
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			rewardID	path		int								true	"Reward ID"
//	@Param			request		body		dto.UpdateRewardStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.RewardResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Reward not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/{rewardID}/status [put]
func (h *RewardHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "rewardID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reward id")
		return
	}
	var req dto.UpdateRewardStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	reward, err := h.rewardService.UpdateStatus(r.Context(), id, domain.RewardStatus(req.Status))
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rewardResponse(reward))
}
