package main

import "github.com/iwtcode/robotAdapter/internal/app"

// @title Robot Adapter API
// @version 1.0.0
// @description API сервера инструментов симулируемого манипулятора
// @host localhost:8000
// @BasePath /api/v1
func main() {
	app.New().Run()
}
