package router

import (
	activityhandler "marketlens/internal/feature/activity/transport/handler"
	authhandler "marketlens/internal/feature/auth/transport/handler"
	billinghandler "marketlens/internal/feature/billing/transport/handler"
	chartshandler "marketlens/internal/feature/charts/transport/handler"
	companyhandler "marketlens/internal/feature/companies/transport/handler"
	comparisonhandler "marketlens/internal/feature/comparison/transport/handler"
	contacthandler "marketlens/internal/feature/contact/transport/handler"
	exporthandler "marketlens/internal/feature/export/transport/handler"
	markethandler "marketlens/internal/feature/market/transport/handler"
	profilehandler "marketlens/internal/feature/profile/transport/handler"
	watchlisthandler "marketlens/internal/feature/watchlist/transport/handler"
	"marketlens/internal/platform/http/handler"
	jwtmw "marketlens/internal/platform/jwt"
	"marketlens/internal/platform/rolegate"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every transport handler the router mounts.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Profile    *profilehandler.ProfileHandler
	Company    *companyhandler.CompanyHandler
	Market     *markethandler.MarketHandler
	Comparison *comparisonhandler.ComparisonHandler
	Charts     *chartshandler.ChartsHandler
	Export     *exporthandler.ExportHandler
	Watchlist  *watchlisthandler.WatchlistHandler
	Activity   *activityhandler.ActivityHandler
	Billing    *billinghandler.BillingHandler
	Contact    *contacthandler.ContactHandler
}

// NewRouter wires every route of the service. Roles come from the shared
// profile cache so the premium and admin gates never hit the database on the
// hot path.
func NewRouter(h Handlers, roles rolegate.RoleSource) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	// Contact form is open to visitors who have no account yet
	r.POST("/contact", h.Contact.Submit)
	// Plan catalog is shown on the public pricing page
	r.GET("/billing/plans", h.Billing.Plans)

	// Authentication required
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/logout", h.Profile.Logout)
		auth.PUT("/auth/password", h.Auth.UpdatePassword)

		auth.GET("/profile", h.Profile.Get)
		auth.PUT("/profile", h.Profile.Update)
		auth.PUT("/profile/avatar", h.Profile.UpdateAvatar)

		auth.GET("/companies", h.Company.Search)
		auth.GET("/companies/sectors", h.Company.Sectors)
		auth.GET("/companies/:id", h.Company.Get)

		auth.POST("/watchlists", h.Watchlist.Create)
		auth.GET("/watchlists", h.Watchlist.List)
		auth.PUT("/watchlists/:id", h.Watchlist.Rename)
		auth.DELETE("/watchlists/:id", h.Watchlist.Delete)
		auth.GET("/watchlists/:id/companies", h.Watchlist.Companies)
		auth.POST("/watchlists/:id/companies", h.Watchlist.AddCompany)
		auth.DELETE("/watchlists/:id/companies/:companyID", h.Watchlist.RemoveCompany)

		auth.GET("/activity", h.Activity.List)

		auth.POST("/billing/orders", h.Billing.CreateOrder)
		auth.POST("/billing/verify", h.Billing.VerifyPayment)

		// Paid-tier analysis surface
		premium := auth.Group("/")
		premium.Use(rolegate.RequirePremium(roles))
		{
			premium.GET("/market/overview", h.Market.Overview)
			premium.GET("/market/latest", h.Market.Latest)
			premium.GET("/market/charts", h.Charts.Market)
			premium.GET("/market/export", h.Export.Market)
			premium.POST("/comparison", h.Comparison.Compare)
			premium.POST("/comparison/charts", h.Charts.Comparison)
			premium.POST("/comparison/export", h.Export.Comparison)
		}

		// Admin back office
		admin := auth.Group("/admin")
		admin.Use(rolegate.RequireAdmin(roles))
		{
			admin.GET("/contact-messages", h.Contact.List)
			admin.PUT("/contact-messages/:id", h.Contact.UpdateStatus)
		}
	}

	return r
}
