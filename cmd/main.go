package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"donation-service/internal/api"
	"donation-service/internal/config"
	"donation-service/internal/consumer"
	"donation-service/internal/repository"
	"donation-service/internal/service"
	"donation-service/migrations"
)

func connectDB(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s: %v", i+1, cfg.DBName, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s after retries: %v", cfg.DBName, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	kafkaReader := config.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, "donation-service-group")

	identityRepo := repository.NewIdentityRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := service.NewAuthService(identityRepo, rdb, []byte(cfg.JWTSecret))
	campaignService := service.NewCampaignService(campaignRepo)
	donationService := service.NewDonationService(donationRepo, kafkaWriter, rdb)
	reportService := service.NewReportService(reportRepo, rdb)

	uploads := api.NewUploader(cfg.UploadDir)
	authHandler := api.NewAuthHandler(authService, uploads)
	campaignHandler := api.NewCampaignHandler(campaignService, uploads)
	donationHandler := api.NewDonationHandler(donationService)
	reportHandler := api.NewReportHandler(reportService)

	donationConsumer := consumer.NewConsumer(campaignService, kafkaReader)
	go donationConsumer.Start(context.Background())

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(1),
				Burst:     3,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Static("/images", cfg.UploadDir)

	// Public routes
	e.POST("/addNewUser", authHandler.AddNewUser)
	e.POST("/userLogin", authHandler.UserLogin)
	e.POST("/addNewAdmin", authHandler.AddNewAdmin)
	e.POST("/adminLogin", authHandler.AdminLogin)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)
	e.GET("/getCampaigns", campaignHandler.GetCampaigns)
	e.GET("/campaignsCount", campaignHandler.CampaignsCount)
	e.GET("/countAllCampaignsStatus", campaignHandler.CountAllCampaignsStatus)
	e.GET("/getDonations", reportHandler.GetDonations)
	e.GET("/getMyDonations/:user_id", reportHandler.GetMyDonations)
	e.GET("/getLeaderboard", reportHandler.GetLeaderboard)
	e.GET("/usersCount", authHandler.UsersCount)
	e.GET("/donationsCount", donationHandler.DonationsCount)

	// Routes requiring a valid session token
	protected := e.Group("")
	protected.Use(echojwt.JWT([]byte(cfg.JWTSecret)))
	protected.GET("/getUsers", authHandler.GetUsers)
	protected.DELETE("/deleteUser/:id", authHandler.DeleteUser)
	protected.POST("/createCampaign", campaignHandler.CreateCampaign)
	protected.PUT("/updateCampaignStatus/:id", campaignHandler.UpdateCampaignStatus)
	protected.PUT("/updateRaisedAmount", campaignHandler.UpdateRaisedAmount)
	protected.DELETE("/deleteCampaign/:id", campaignHandler.DeleteCampaign)
	protected.POST("/addToDonations", donationHandler.AddToDonations)
	protected.DELETE("/deleteDonation/:id", donationHandler.DeleteDonation)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "donation-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
