package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Staff, error)
	Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
}

// Service authenticates back-office staff. Customers never log in; every API
// call is made by an operator.
type Service struct {
	staffRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		staffRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Staff, error) {
	existing, err := s.staffRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find staff account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("staff login already exists", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	staff := &domain.Staff{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	created, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		zap.L().Error("can't create staff account", zap.Error(err))
		return nil, err
	}
	zap.L().Info("staff account registered", zap.String("login", login))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindByLogin(ctx, login)
	if err != nil || staff == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(staff.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, errors.New("invalid credentials")
	}
	return staff, nil
}

func (s *Service) GenerateToken(staffID int64) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(staffID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
