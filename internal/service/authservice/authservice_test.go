package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, staffRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedStaff *domain.Staff
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				staffRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
					staff.ID = 1
					return staff, nil
				})
			},
			expectedStaff: &domain.Staff{
				ID:           1,
				Login:        "operator",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Login already exists",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(&domain.Staff{Login: "operator"}, nil)
			},
			expectedStaff: nil,
			expectedError: errors.New("login already taken"),
		},
		{
			name:     "Error hashing password",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedStaff: nil,
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Error creating staff account",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				staffRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedStaff: nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			staff, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStaff, staff)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, staffRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedStaff *domain.Staff
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(&domain.Staff{
					ID:           1,
					Login:        "operator",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedStaff: &domain.Staff{
				ID:           1,
				Login:        "operator",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "operator",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(nil, nil)
			},
			expectedStaff: nil,
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Wrong password",
			login:    "operator",
			password: "wrongpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "operator").Return(&domain.Staff{
					ID:           1,
					Login:        "operator",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedStaff: nil,
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			staff, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStaff, staff)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		staffID       int64
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:    "Successful token generation",
			staffID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).Return("token123", nil)
			},
			expectedToken: "token123",
			expectedError: nil,
		},
		{
			name:    "Error generating token",
			staffID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).Return("", errors.New("jwt error"))
			},
			expectedToken: "",
			expectedError: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			token, err := service.GenerateToken(tt.staffID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
