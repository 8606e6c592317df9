package main

import (
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"marketlens/internal/app/di"
	"marketlens/internal/app/router"
	activityadapters "marketlens/internal/feature/activity/adapters"
	activityhandler "marketlens/internal/feature/activity/transport/handler"
	activityusecase "marketlens/internal/feature/activity/usecase"
	authadapters "marketlens/internal/feature/auth/adapters"
	authhandler "marketlens/internal/feature/auth/transport/handler"
	authusecase "marketlens/internal/feature/auth/usecase"
	billingadapters "marketlens/internal/feature/billing/adapters"
	billinghandler "marketlens/internal/feature/billing/transport/handler"
	billingusecase "marketlens/internal/feature/billing/usecase"
	chartshandler "marketlens/internal/feature/charts/transport/handler"
	companyadapters "marketlens/internal/feature/companies/adapters"
	companyhandler "marketlens/internal/feature/companies/transport/handler"
	companyusecase "marketlens/internal/feature/companies/usecase"
	comparisonhandler "marketlens/internal/feature/comparison/transport/handler"
	comparisonusecase "marketlens/internal/feature/comparison/usecase"
	contactadapters "marketlens/internal/feature/contact/adapters"
	contacthandler "marketlens/internal/feature/contact/transport/handler"
	contactusecase "marketlens/internal/feature/contact/usecase"
	exporthandler "marketlens/internal/feature/export/transport/handler"
	marketadapters "marketlens/internal/feature/market/adapters"
	markethandler "marketlens/internal/feature/market/transport/handler"
	marketusecase "marketlens/internal/feature/market/usecase"
	profileadapters "marketlens/internal/feature/profile/adapters"
	profilehandler "marketlens/internal/feature/profile/transport/handler"
	profileusecase "marketlens/internal/feature/profile/usecase"
	watchlistadapters "marketlens/internal/feature/watchlist/adapters"
	watchlisthandler "marketlens/internal/feature/watchlist/transport/handler"
	watchlistusecase "marketlens/internal/feature/watchlist/usecase"
	infradb "marketlens/internal/platform/db"
	jwtmw "marketlens/internal/platform/jwt"
	infraredis "marketlens/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	profileRepo := profileadapters.NewProfileRepository(db)
	companyRepo := companyadapters.NewCompanyRepository(db)
	marketRows := marketadapters.NewMarketRowsRepository(db)
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)
	activityRepo := activityadapters.NewActivityRepository(db)
	orderRepo := billingadapters.NewOrderRepository(db)
	contactRepo := contactadapters.NewContactRepository(db)

	// Shared profile cache, also the role source for the route gates
	profileStore := di.NewProfileStore(rdb, db)

	// JWT
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)

	// Usecase
	activityUC := activityusecase.NewActivityUsecase(activityRepo, nil)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen, activityUC)
	profileUC := profileusecase.NewProfileUsecase(profileRepo, userRepo, profileStore)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo)
	marketUC := marketusecase.NewMarketUsecase(marketRows, nil)
	comparisonUC := comparisonusecase.NewComparisonUsecase(companyRepo, activityUC, nil)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, activityUC)
	billingUC := billingusecase.NewBillingUsecase(di.NewPaymentGateway(), orderRepo, profileUC, activityUC)
	contactUC := contactusecase.NewContactUsecase(contactRepo)

	// Handler
	h := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Profile:    profilehandler.NewProfileHandler(profileUC),
		Company:    companyhandler.NewCompanyHandler(companyUC),
		Market:     markethandler.NewMarketHandler(marketUC),
		Comparison: comparisonhandler.NewComparisonHandler(comparisonUC),
		Charts:     chartshandler.NewChartsHandler(marketUC, comparisonUC),
		Export:     exporthandler.NewExportHandler(marketUC, comparisonUC, activityUC, nil),
		Watchlist:  watchlisthandler.NewWatchlistHandler(watchlistUC),
		Activity:   activityhandler.NewActivityHandler(activityUC),
		Billing:    billinghandler.NewBillingHandler(billingUC),
		Contact:    contacthandler.NewContactHandler(contactUC),
	}

	r := router.NewRouter(h, profileStore)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
