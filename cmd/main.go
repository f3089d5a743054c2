package main

import (
	"bank-backoffice-api/app"
)

// @title           Bank Backoffice API
// @version         1.0
// @description     Back-office service for clients, accounts, transfers with currency conversion, branches and employees.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
