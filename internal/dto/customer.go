package dto

import "time"

type EnrollCustomerRequestDTO struct {
	FirstName   string `json:"first_name" validate:"required,max=100" example:"Jane"`
	LastName    string `json:"last_name" validate:"required,max=100" example:"Doe"`
	Email       string `json:"email" validate:"required,email" example:"jane.doe@example.com"`
	Phone       string `json:"phone" validate:"omitempty,max=20" example:"+14155550123"`
	CardNumber  string `json:"card_number" validate:"required" example:"4561261212345467"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02" example:"1990-12-10"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER" example:"FEMALE"`
	City        string `json:"city" validate:"omitempty,max=100" example:"Austin"`
	State       string `json:"state" validate:"omitempty,max=100" example:"TX"`
}

type CustomerResponseDTO struct {
	ID             int64     `json:"id" example:"42"`
	CustomerCode   string    `json:"customer_code" example:"CUS-9F4E2A7B"`
	CardNumber     string    `json:"card_number" example:"4561261212345467"`
	FirstName      string    `json:"first_name" example:"Jane"`
	LastName       string    `json:"last_name" example:"Doe"`
	Email          string    `json:"email" example:"jane.doe@example.com"`
	Tier           string    `json:"tier" example:"BRONZE"`
	Status         string    `json:"status" example:"ACTIVE"`
	EnrollmentDate time.Time `json:"enrollment_date" example:"2024-06-01T12:00:00Z"`
}

type UpdateTierRequestDTO struct {
	Tier string `json:"tier" validate:"required,oneof=BRONZE SILVER GOLD PLATINUM DIAMOND" example:"GOLD"`
}

type UpdateCustomerStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED" example:"SUSPENDED"`
}
