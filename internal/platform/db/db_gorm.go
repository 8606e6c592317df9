// Package db opens the GORM connection to the relational backend.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityentity "marketlens/internal/feature/activity/domain/entity"
	authentity "marketlens/internal/feature/auth/domain/entity"
	billingentity "marketlens/internal/feature/billing/domain/entity"
	companyentity "marketlens/internal/feature/companies/domain/entity"
	contactentity "marketlens/internal/feature/contact/domain/entity"
	profileentity "marketlens/internal/feature/profile/domain/entity"
	watchlistentity "marketlens/internal/feature/watchlist/domain/entity"
)

// OpenDB connects to Postgres using environment configuration, retrying for
// up to 60 seconds so the service survives a database that is still booting.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&profileentity.Profile{},
			&companyentity.Company{},
			&companyentity.FinancialStatement{},
			&companyentity.FundingRound{},
			&companyentity.KeyOfficial{},
			&watchlistentity.Watchlist{},
			&watchlistentity.WatchlistCompany{},
			&activityentity.ActivityLog{},
			&contactentity.ContactMessage{},
			&billingentity.PaymentOrder{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
