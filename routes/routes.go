package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/controllers"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "vyaaparsahayak-api",
		})
	})).Methods(http.MethodGet)

	// Add CORS middleware - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	origins := []string{
		"http://localhost:3000", "http://localhost:8080", "http://127.0.0.1:3000", "http://127.0.0.1:8080",
	}
	if originsEnv != "" {
		parts := strings.Split(originsEnv, ",")
		for _, p := range parts {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	// Add catch-all OPTIONS handler for CORS preflight
	r.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// The AI-backed endpoints spend Groq quota; keep their window tight.
	aiLimiter := middleware.NewAIQuotaLimiter(30, time.Hour)

	// Product catalog and production tracking
	r.Handle("/products", http.HandlerFunc(controllers.CreateProductHandler)).Methods(http.MethodPost)
	r.Handle("/products", http.HandlerFunc(controllers.ListProductsHandler)).Methods(http.MethodGet)
	r.Handle("/products/{product_id}/production_batches", http.HandlerFunc(controllers.CreateProductionBatchHandler)).Methods(http.MethodPost)
	r.Handle("/products/{product_id}/production_insights", http.HandlerFunc(controllers.ProductionInsightsHandler)).Methods(http.MethodGet)
	r.Handle("/products/{product_id}/performance", http.HandlerFunc(controllers.ProductPerformanceHandler)).Methods(http.MethodGet)

	// Order intake (decrements inventory atomically)
	r.Handle("/orders", http.HandlerFunc(controllers.CreateOrderHandler)).Methods(http.MethodPost)

	// Dashboard metrics, all derived from orders and products
	r.Handle("/dashboard", http.HandlerFunc(controllers.DashboardHandler)).Methods(http.MethodGet)
	r.Handle("/dashboard/channel-wise", http.HandlerFunc(controllers.DashboardChannelWiseHandler)).Methods(http.MethodGet)
	r.Handle("/dashboard/products", http.HandlerFunc(controllers.DashboardProductsHandler)).Methods(http.MethodGet)
	r.Handle("/dashboard/sales-summary", http.HandlerFunc(controllers.DashboardSalesSummaryHandler)).Methods(http.MethodGet)

	// Startup profiles and government scheme matching
	r.Handle("/startup-profile", http.HandlerFunc(controllers.CreateStartupProfileHandler)).Methods(http.MethodPost)
	r.Handle("/startup-profile/{profile_id}", http.HandlerFunc(controllers.GetStartupProfileHandler)).Methods(http.MethodGet)
	r.Handle("/startup-profile/{profile_id}/matched-schemes", http.HandlerFunc(controllers.MatchedSchemesHandler)).Methods(http.MethodGet)
	r.Handle("/schemes", http.HandlerFunc(controllers.ListSchemesHandler)).Methods(http.MethodGet)

	// Risk detection with AI action plan
	r.Handle("/risk-analysis", aiLimiter.Middleware(http.HandlerFunc(controllers.RiskAnalysisHandler))).Methods(http.MethodPost)
	r.Handle("/risk-analysis/{report_id}", http.HandlerFunc(controllers.GetRiskReportHandler)).Methods(http.MethodGet)

	// AI marketing endpoints
	r.Handle("/ai/audience-matching", aiLimiter.Middleware(http.HandlerFunc(controllers.AudienceMatchingHandler))).Methods(http.MethodPost)
	r.Handle("/ai/content-optimization", aiLimiter.Middleware(http.HandlerFunc(controllers.ContentOptimizationHandler))).Methods(http.MethodPost)

	return r
}
