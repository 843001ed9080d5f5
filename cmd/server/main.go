package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"item_backend/internal/app/di"
	"item_backend/internal/app/router"
	authadapters "item_backend/internal/feature/auth/adapters"
	authhandler "item_backend/internal/feature/auth/transport/handler"
	authusecase "item_backend/internal/feature/auth/usecase"
	itemhandler "item_backend/internal/feature/items/transport/handler"
	itemusecase "item_backend/internal/feature/items/usecase"
	useradapters "item_backend/internal/feature/users/adapters"
	userhandler "item_backend/internal/feature/users/transport/handler"
	userusecase "item_backend/internal/feature/users/usecase"
	"item_backend/internal/platform/config"
	platformdb "item_backend/internal/platform/db"
	jwtmw "item_backend/internal/platform/jwt"
	platformredis "item_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Println("[WARN] auth secret is not set. Set a strong secret in production.")
	}

	// db
	conn := platformdb.OpenDB(cfg)

	// Redis (optional; the cache layer degrades to pass-through without it)
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		log.Println("[WARN] Redis not configured. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	authUserRepo := authadapters.NewUserRepository(conn)
	profileRepo := useradapters.NewUserRepository(conn)
	itemRepo := di.NewItemRepository(rdb, conn, 5*time.Minute)

	// Token service
	tokens := jwtmw.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(authUserRepo, tokens, cfg.Auth.BcryptCost)
	itemUC := itemusecase.NewItemUsecase(itemRepo)
	userUC := userusecase.NewUserUsecase(profileRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	itemH := itemhandler.NewItemHandler(itemUC)
	userH := userhandler.NewUserHandler(userUC)

	// Authorization guard
	guard := jwtmw.AuthRequired(tokens, authUserRepo)

	r := router.NewRouter(cfg, authH, itemH, userH, guard)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
