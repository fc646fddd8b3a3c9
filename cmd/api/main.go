package main

import (
	_ "mecanique_mobile/docs"
	"mecanique_mobile/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mobile Mechanic Quoting API
// @version         1.0
// @description     Quote pricing, distance resolution, slot availability and invoicing, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
