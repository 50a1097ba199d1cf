package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Settings holds everything read from the environment at boot.
type Settings struct {
	Addr       string
	DBPath     string
	UploadsDir string

	// PIX receiver identity embedded in payment payloads.
	PixKey          string
	PixReceiverName string
	PixCity         string

	// Destination for the proof-of-payment WhatsApp handoff (country code,
	// digits only).
	WhatsAppNumber string

	// Initial admin credentials, used only when admin_users is empty.
	AdminUsername string
	AdminPassword string
}

// C is the active configuration. Load sets it; tests may override fields.
var C Settings

func Load() Settings {
	_ = godotenv.Load()

	C = Settings{
		Addr:            getEnv("ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "araporanga.db"),
		UploadsDir:      getEnv("UPLOADS_DIR", "uploads"),
		PixKey:          getEnv("PIX_KEY", "103.646.613-21"),
		PixReceiverName: getEnv("PIX_RECEIVER_NAME", "Elnata Oliveira da Rocha"),
		PixCity:         getEnv("PIX_CITY", "Arapiraca"),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "5588988236003"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
	}
	return C
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
