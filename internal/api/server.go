package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spendguard/spendguard/internal/service"
	"github.com/spendguard/spendguard/pkg/httputil"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	wishlistService  service.WishlistServiceI
	purchasesService service.PurchasesServiceI
	taxService       service.ADHDTaxServiceI
	rewardsService   service.RewardsServiceI
	insightService   service.InsightServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	WishlistService  service.WishlistServiceI
	PurchasesService service.PurchasesServiceI
	TaxService       service.ADHDTaxServiceI
	RewardsService   service.RewardsServiceI
	InsightService   service.InsightServiceI
	JWTService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		wishlistService:  servicesOptions.WishlistService,
		purchasesService: servicesOptions.PurchasesService,
		taxService:       servicesOptions.TaxService,
		rewardsService:   servicesOptions.RewardsService,
		insightService:   servicesOptions.InsightService,
		jwtService:       servicesOptions.JWTService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/profile", s.GetProfile)
			r.Put("/profile/settings", s.UpdateSettings)

			r.Route("/wishlist", func(r chi.Router) {
				r.Post("/", s.AddWishlistItem)
				r.Get("/", s.GetWishlist)
				r.Delete("/{id}", s.DeleteWishlistItem)
				r.Post("/{id}/purchase", s.PurchaseWishlistItem)
				r.Post("/{id}/dismiss", s.DismissWishlistItem)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", s.LogPurchase)
				r.Get("/", s.GetPurchases)
			})

			r.Route("/adhd-tax", func(r chi.Router) {
				r.Post("/", s.AddTaxItem)
				r.Get("/", s.GetTaxItems)
				r.Delete("/{id}", s.DeleteTaxItem)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", s.GetRewards)
				r.Get("/badges", s.GetBadges)
			})

			r.Post("/insights/chat", s.InsightChat)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the router. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
