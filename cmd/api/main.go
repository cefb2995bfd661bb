package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spendguard/spendguard/internal/api"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/internal/service"
	"github.com/spendguard/spendguard/pkg/cleanup"
	"github.com/spendguard/spendguard/pkg/config"
	jwtservice "github.com/spendguard/spendguard/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	wishlistRepo := repository.NewWishlistRepo(&dbCfg)
	purchasesRepo := repository.NewPurchasesRepo(&dbCfg)
	taxRepo := repository.NewADHDTaxRepo(&dbCfg)
	rewardsRepo := repository.NewRewardsRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	rewardsService := service.NewRewardsService(rewardsRepo, usersRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, usersRepo, rewardsService)
	purchasesService := service.NewPurchasesService(purchasesRepo, usersRepo)
	taxService := service.NewADHDTaxService(taxRepo, usersRepo)
	insightService := service.NewInsightService(service.InsightConfig{
		Endpoint: cfg.GetString("INSIGHT_API_URL"),
		APIKey:   cfg.GetString("INSIGHT_API_KEY"),
		Model:    cfg.GetString("INSIGHT_MODEL"),
	}, service.InsightRepos{
		Users:     usersRepo,
		Wishlist:  wishlistRepo,
		Purchases: purchasesRepo,
		Tax:       taxRepo,
		Rewards:   rewardsRepo,
	})

	// Expired cooldowns are swept once at startup, then every minute. Items
	// become ready within a minute of their deadline even across restarts
	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		_, err := wishlistService.SweepCooldowns(ctx, time.Now())
		if err != nil {
			slog.Error("cooldown sweep failed", slog.String("error", err.Error()))
		}
	}
	sweep()
	scheduler := cron.New()
	_, err := scheduler.AddFunc("@every 1m", sweep)
	if err != nil {
		log.Fatal("scheduling cooldown sweep error: " + err.Error())
	}
	scheduler.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping cooldown sweeper",
		F: func() error {
			<-scheduler.Stop().Done()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:      userService,
		WishlistService:  wishlistService,
		PurchasesService: purchasesService,
		TaxService:       taxService,
		RewardsService:   rewardsService,
		InsightService:   insightService,
		JWTService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
