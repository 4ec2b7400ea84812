package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/configs"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/middlewares"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/routes"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	store, err := configs.OpenStore(cfg)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}

	// migrate + seed
	if err := configs.SetupDatabase(store); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(store, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(store); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// session carts
	sessions := session.NewStore(cfg.CartTTL)
	sessions.StartJanitor(10 * time.Minute)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/static", cfg.StaticDir)

	if err := routes.RegisterRoutes(r, store, sessions, cfg); err != nil {
		log.Fatalf("register routes failed: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Println("🚀 Server running at", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// shut down cleanly: stop accepting, stop the janitor, close the DB once
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("server shutdown:", err)
	}
	sessions.Stop()
	if err := store.Close(); err != nil {
		log.Println("close store:", err)
	}
	log.Println("👋 bye")
}
