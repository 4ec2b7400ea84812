package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	CartTTL         time.Duration
	CheckoutTimeout time.Duration
	AdminUsername   string
	AdminPassword   string
	StaticDir       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "food_delivery.db"),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          getDuration("JWT_TTL", 24*time.Hour),
		CartTTL:         getDuration("CART_TTL", 24*time.Hour),
		CheckoutTimeout: getDuration("CHECKOUT_TIMEOUT", 5*time.Second),
		AdminUsername:   getEnv("ADMIN_USERNAME", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		StaticDir:       getEnv("STATIC_DIR", "./frontend"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// plain number = hours, e.g. CART_TTL=12
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Hour
	}
	log.Printf("invalid duration for %s: %q, using default", key, v)
	return fallback
}
