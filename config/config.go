package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary khởi tạo client upload ảnh đánh giá
func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// UpstreamBaseURL trả về base URL của backend REST API
func UpstreamBaseURL() string {
	if u := os.Getenv("UPSTREAM_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080/api/v1"
}

// UpstreamWSURL trả về địa chỉ kênh push của backend
func UpstreamWSURL() string {
	if u := os.Getenv("UPSTREAM_WS_URL"); u != "" {
		return u
	}
	return "ws://localhost:8080/ws"
}
