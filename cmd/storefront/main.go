package main

import "storefront/cmd/storefront/commands"

// @title Storefront API
// @version 1.0
// @description Users, products and orders services behind an API gateway
// @BasePath /
func main() {
	commands.Execute()
}
