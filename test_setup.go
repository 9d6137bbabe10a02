package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Test MongoDB
	fmt.Println("Testing MongoDB connection...")
	mongoURI := os.Getenv("MONGODB_URI")
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping failed:", err)
	}
	fmt.Println("✅ MongoDB connected successfully!")

	// Test Cloudinary (optional; media upload is disabled without it)
	fmt.Println("\nTesting Cloudinary configuration...")
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudName == "" {
		fmt.Println("⚠️  CLOUDINARY_CLOUD_NAME not set; media upload will be disabled")
		return
	}
	cld, err := cloudinary.NewFromParams(cloudName, os.Getenv("CLOUDINARY_API_KEY"), os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		log.Fatal("Cloudinary setup failed:", err)
	}
	if _, err := cld.Admin.Ping(context.Background()); err != nil {
		log.Fatal("Cloudinary ping failed:", err)
	}
	fmt.Println("✅ Cloudinary configured successfully!")
}
