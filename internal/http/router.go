package httpapi

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NotAnsar/orava-api/internal/analytics"
	"github.com/NotAnsar/orava-api/internal/config"
	"github.com/NotAnsar/orava-api/internal/http/handlers"
	"github.com/NotAnsar/orava-api/internal/middleware"
	"github.com/NotAnsar/orava-api/internal/queue"
	"github.com/NotAnsar/orava-api/internal/search"
	"github.com/NotAnsar/orava-api/internal/storage"
	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(st *store.Store, logger *zap.Logger, cfg config.Config, queueClient *queue.Client, objectStore *storage.ObjectStore, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			AllowCredentials: true,
			MaxAge:           300,
		}
		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}
		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{
		Store:     st,
		Logger:    logger,
		Config:    cfg,
		Queue:     queueClient,
		Storage:   objectStore,
		Analytics: analytics.NewService(st),
		Search:    search.NewEngine(st),
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
			r.Post("/guest-login", h.GuestLogin)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)
		})

		// Storefront catalog reads are public.
		api.Group(func(r chi.Router) {
			r.Get("/products", h.ProductsList)
			r.Get("/products/active", h.ProductsActive)
			r.Get("/products/featured", h.ProductsFeatured)
			r.Get("/products/category/{id}", h.ProductsByCategory)
			r.Get("/products/color/{id}", h.ProductsByColor)
			r.Get("/products/size/{id}", h.ProductsBySize)
			r.Get("/products/{id}", h.ProductGet)
			r.Get("/products/{id}/images", h.ProductImagesList)
			r.Get("/categories", h.CategoriesList)
			r.Get("/categories/{id}", h.CategoryGet)
			r.Get("/colors", h.ColorsList)
			r.Get("/colors/{id}", h.ColorGet)
			r.Get("/sizes", h.SizesList)
			r.Get("/sizes/{id}", h.SizeGet)
		})

		api.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.ProfileGet)
				r.Patch("/", h.ProfileUpdate)
				r.Patch("/password", h.ProfileChangePassword)
				r.Delete("/", h.ProfileDelete)
			})

			// Dashboard reads: admins plus the read-only demo account.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireDashboard())

				r.Route("/home", func(r chi.Router) {
					r.Get("/summary", h.HomeSummary)
					r.Get("/revenue", h.HomeMonthlyRevenue)
					r.Get("/recent-orders", h.HomeRecentOrders)
					r.Get("/inventory-alert", h.HomeInventoryAlert)
					r.Get("/category-performance", h.HomeCategorySales)
				})

				r.Route("/analytics", func(r chi.Router) {
					r.Get("/revenue-trends", h.AnalyticsRevenueTrends)
					r.Get("/category-performance", h.AnalyticsCategoryPerformance)
					r.Get("/order-status", h.AnalyticsOrderStatus)
					r.Get("/top-products", h.AnalyticsTopProducts)
					r.Get("/customer-segmentation", h.AnalyticsCustomerSegmentation)
					r.Get("/sales-by-day", h.AnalyticsSalesByDay)
					r.Get("/inventory-status", h.AnalyticsInventoryStatus)
				})

				r.Route("/chat", func(r chi.Router) {
					r.Get("/products/search", h.ChatSearchProducts)
					r.Get("/orders/search", h.ChatSearchOrders)
					r.Get("/users/search", h.ChatSearchUsers)
					r.Post("/query", h.ChatQuery)
				})

				r.Get("/orders", h.OrdersList)
				r.Get("/orders/user/{userId}", h.OrdersByUser)
				r.Get("/orders/status/{status}", h.OrdersByStatus)
				r.Get("/orders/{id}", h.OrderGet)
				r.Get("/orders/{id}/invoice", h.OrderInvoicePDF)
				r.Get("/tasks", h.TasksList)
				r.Get("/tasks/{id}", h.TaskGet)
			})

			// Mutations: admins and regular accounts, never guests.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWriter())

				r.Post("/products", h.ProductCreate)
				r.Put("/products/{id}", h.ProductUpdate)
				r.Patch("/products/{id}/archive", h.ProductArchive)
				r.Patch("/products/{id}/toggle-archive", h.ProductToggleArchive)
				r.Delete("/products/{id}", h.ProductDelete)
				r.Post("/products/{id}/images", h.ProductImageUpload)
				r.Delete("/products/images/{imageId}", h.ProductImageDelete)

				r.Post("/categories", h.CategoryCreate)
				r.Patch("/categories/{id}", h.CategoryUpdate)
				r.Delete("/categories/{id}", h.CategoryDelete)
				r.Post("/colors", h.ColorCreate)
				r.Patch("/colors/{id}", h.ColorUpdate)
				r.Delete("/colors/{id}", h.ColorDelete)
				r.Post("/sizes", h.SizeCreate)
				r.Patch("/sizes/{id}", h.SizeUpdate)
				r.Delete("/sizes/{id}", h.SizeDelete)

				r.Post("/orders", h.OrderCreate)
				r.Patch("/orders/{id}/status", h.OrderUpdateStatus)
				r.Delete("/orders/{id}", h.OrderDelete)

				r.Post("/tasks", h.TaskCreate)
				r.Put("/tasks/{id}", h.TaskUpdate)
				r.Patch("/tasks/{id}/status", h.TaskUpdateStatus)
				r.Delete("/tasks/{id}", h.TaskDelete)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin())

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.UsersList)
					r.Post("/", h.UserCreate)
					r.Get("/{id}", h.UserGet)
					r.Put("/{id}", h.UserUpdate)
					r.Delete("/{id}", h.UserDelete)
				})

				r.Post("/query/execute", h.QueryExecute)
			})
		})
	})

	if wsServer != nil {
		r.Get("/ws/admin/orders", wsServer.OrdersFeed)
	}

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
