package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret       string
	DbHost          string
	DbPort          string
	DbUser          string
	DbPassword      string
	DbName          string
	ServerPort      string
	Issuer          string
	RoomServiceURL  string
	RoomTokenSecret string
	RoomTokenTTLMin int
	GuestTokenLen   int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "consult")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "consult")

	RoomServiceURL = getEnv("ROOM_SERVICE_URL", "wss://rooms.local")
	RoomTokenSecret = getEnv("ROOM_TOKEN_SECRET", JwtSecret)
	RoomTokenTTLMin, _ = strconv.Atoi(getEnv("ROOM_TOKEN_TTL_MIN", "15"))
	GuestTokenLen, _ = strconv.Atoi(getEnv("GUEST_TOKEN_LENGTH", "32"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
