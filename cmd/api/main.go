package main

import (
	_ "logistica_iac/docs"
	"logistica_iac/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Logistica IAC API
// @version         1.0
// @description     Logistics tracking service: shipment intake with quotation, weigh-in verification, abono ledger and customer portal.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic AdminAuth
// @description Administrator credentials (ADMIN_USER / ADMIN_PASS).

// @securityDefinitions.basic PortalAuth
// @description Customer account credentials.

func main() {
	routes.Run()
}
