package main

import "table-order/cmd"

// @title Table Order API
// @version 1.0
// @description REST API for QR table ordering: menus, orders, kitchen queue and admin dashboard.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cmd.Execute()
}
