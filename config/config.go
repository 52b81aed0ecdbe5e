package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường từ file .env (nếu có)
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using system environment")
	}
	return os.Getenv(key)
}
