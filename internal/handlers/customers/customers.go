package customers

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
	"github.com/rewardplus/loyalty/internal/service/customerservice"
	"github.com/rewardplus/loyalty/pkg/utils"
	"github.com/rewardplus/loyalty/pkg/validate"
)

type Service interface {
	Enroll(ctx context.Context, input customerservice.EnrollInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
	UpdateTier(ctx context.Context, id int64, tier domain.CustomerTier) (*domain.Customer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) (*domain.Customer, error)
}

type CustomerHandler struct {
	customerService Service
	validate        *validator.Validate
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validate:        validator.New(),
	}
}

func customerResponse(c *domain.Customer) dto.CustomerResponseDTO {
	return dto.CustomerResponseDTO{
		ID:             c.ID,
		CustomerCode:   c.CustomerCode,
		CardNumber:     c.CardNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Tier:           string(c.Tier),
		Status:         string(c.Status),
		EnrollmentDate: c.EnrollmentDate,
	}
}

// Enroll godoc
//
//	@Summary		Enroll a customer
//	@Description	Register a customer in the loyalty program, open their ledger account and credit the welcome bonus.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnrollCustomerRequestDTO	true	"Enrollment payload"
//	@Success		200		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already enrolled"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customers [post]
func (h *CustomerHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req dto.EnrollCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validate.IsCardNumber(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date of birth")
		return
	}

	customer, err := h.customerService.Enroll(r.Context(), customerservice.EnrollInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		CardNumber:  req.CardNumber,
		Gender:      req.Gender,
		City:        req.City,
		State:       req.State,
		DateOfBirth: dob,
	})
	if err != nil {
		var duplicate *apperr.DuplicateCodeError
		if errors.As(err, &duplicate) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customerResponse(customer))
}

// GetCustomer godoc
//
//	@Summary		Get customer
//	@Description	Look up a customer by numeric id.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		int	true	"Customer ID"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		respondCustomerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customerResponse(customer))
}

// GetCustomerByCode godoc
//
//	@Summary		Get customer by code
//	@Description	Look up a customer by their customer code.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Customer code"
//	@Success		200		{object}	dto.CustomerResponseDTO
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/code/{code} [get]
func (h *CustomerHandler) GetCustomerByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	customer, err := h.customerService.GetByCode(r.Context(), code)
	if err != nil {
		respondCustomerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customerResponse(customer))
}

// UpdateTier godoc
//
//	@Summary		Update customer tier
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int						true	"Customer ID"
//	@Param			request		body		dto.UpdateTierRequestDTO	true	"New tier"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/tier [put]
func (h *CustomerHandler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.UpdateTierRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.customerService.UpdateTier(r.Context(), id, domain.CustomerTier(req.Tier))
	if err != nil {
		respondCustomerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customerResponse(customer))
}

// UpdateStatus godoc
//
//	@Summary		Update customer status
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		int								true	"Customer ID"
//	@Param			request		body		dto.UpdateCustomerStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/status [put]
func (h *CustomerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req dto.UpdateCustomerStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.customerService.UpdateStatus(r.Context(), id, domain.CustomerStatus(req.Status))
	if err != nil {
		respondCustomerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customerResponse(customer))
}

func respondCustomerError(w http.ResponseWriter, err error) {
	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
