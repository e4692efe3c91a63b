package main

import (
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BaseCommerce Payment Plugin API
// @version         1.0
// @description     Payment gateway adapter for Base Commerce: tenant credential ingestion, payment method tokenization and purchase dispatch backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
