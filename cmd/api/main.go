package main

import (
	_ "athwela/docs"
	"athwela/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Athwela Relief API
// @version         1.0
// @description     Disaster-relief needs, pledges and PIN-protected community records backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
