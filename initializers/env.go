package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		// .env is optional in deployed environments
		if !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
	}
}
