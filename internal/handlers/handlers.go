package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rewardplus/loyalty/docs"
	analyticshandlers "github.com/rewardplus/loyalty/internal/handlers/analytics"
	authhandlers "github.com/rewardplus/loyalty/internal/handlers/auth"
	customerhandlers "github.com/rewardplus/loyalty/internal/handlers/customers"
	pointshandlers "github.com/rewardplus/loyalty/internal/handlers/points"
	promotionhandlers "github.com/rewardplus/loyalty/internal/handlers/promotions"
	redemptionhandlers "github.com/rewardplus/loyalty/internal/handlers/redemptions"
	rewardhandlers "github.com/rewardplus/loyalty/internal/handlers/rewards"
	transactionhandlers "github.com/rewardplus/loyalty/internal/handlers/transactions"
	"github.com/rewardplus/loyalty/internal/service"
	"github.com/rewardplus/loyalty/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	Enroll(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomerByCode(w http.ResponseWriter, r *http.Request)
	UpdateTier(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	AddPoints(w http.ResponseWriter, r *http.Request)
	RedeemPoints(w http.ResponseWriter, r *http.Request)
	AdjustPoints(w http.ResponseWriter, r *http.Request)
	ExpirePoints(w http.ResponseWriter, r *http.Request)
}

type PromotionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	GetPromotion(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListAvailable(w http.ResponseWriter, r *http.Request)
	GetReward(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type RedemptionHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	MarkUsed(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetRedemption(w http.ResponseWriter, r *http.Request)
	GetRedemptionByCode(w http.ResponseWriter, r *http.Request)
	ListByCustomer(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	ListByCustomer(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	ProgramSummary(w http.ResponseWriter, r *http.Request)
	TierDistribution(w http.ResponseWriter, r *http.Request)
	RedemptionTrends(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	CustomerHandler    CustomerHandler
	PointsHandler      PointsHandler
	PromotionHandler   PromotionHandler
	RewardHandler      RewardHandler
	RedemptionHandler  RedemptionHandler
	TransactionHandler TransactionHandler
	AnalyticsHandler   AnalyticsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		CustomerHandler:    customerhandlers.New(s.CustomerService),
		PointsHandler:      pointshandlers.New(s.LedgerService),
		PromotionHandler:   promotionhandlers.New(s.PromotionService),
		RewardHandler:      rewardhandlers.New(s.RewardService),
		RedemptionHandler:  redemptionhandlers.New(s.RedemptionService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		AnalyticsHandler:   analyticshandlers.New(s.AnalyticsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/customers", func(r chi.Router) {
				r.Post("/", h.CustomerHandler.Enroll)
				r.Get("/code/{code}", h.CustomerHandler.GetCustomerByCode)
				r.Route("/{customerID}", func(r chi.Router) {
					r.Get("/", h.CustomerHandler.GetCustomer)
					r.Put("/tier", h.CustomerHandler.UpdateTier)
					r.Put("/status", h.CustomerHandler.UpdateStatus)
					r.Route("/points", func(r chi.Router) {
						r.Get("/", h.PointsHandler.GetBalance)
						r.Post("/add", h.PointsHandler.AddPoints)
						r.Post("/redeem", h.PointsHandler.RedeemPoints)
						r.Post("/adjust", h.PointsHandler.AdjustPoints)
						r.Post("/expire", h.PointsHandler.ExpirePoints)
					})
					r.Get("/redemptions", h.RedemptionHandler.ListByCustomer)
					r.Get("/transactions", h.TransactionHandler.ListByCustomer)
				})
			})
			r.Route("/promotions", func(r chi.Router) {
				r.Post("/", h.PromotionHandler.Create)
				r.Get("/", h.PromotionHandler.ListActive)
				r.Get("/{promotionID}", h.PromotionHandler.GetPromotion)
				r.Put("/{promotionID}/status", h.PromotionHandler.UpdateStatus)
			})
			r.Route("/rewards", func(r chi.Router) {
				r.Post("/", h.RewardHandler.Create)
				r.Get("/", h.RewardHandler.ListAvailable)
				r.Get("/{rewardID}", h.RewardHandler.GetReward)
				r.Put("/{rewardID}/status", h.RewardHandler.UpdateStatus)
			})
			r.Route("/redemptions", func(r chi.Router) {
				r.Post("/", h.RedemptionHandler.Redeem)
				r.Get("/code/{code}", h.RedemptionHandler.GetRedemptionByCode)
				r.Get("/{redemptionID}", h.RedemptionHandler.GetRedemption)
				r.Post("/{redemptionID}/use", h.RedemptionHandler.MarkUsed)
				r.Post("/{redemptionID}/cancel", h.RedemptionHandler.Cancel)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", h.TransactionHandler.RecordPurchase)
				r.Get("/{code}", h.TransactionHandler.GetTransaction)
			})
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", h.AnalyticsHandler.ProgramSummary)
				r.Get("/tiers", h.AnalyticsHandler.TierDistribution)
				r.Get("/redemptions", h.AnalyticsHandler.RedemptionTrends)
			})
		})
	})

	return r
}
