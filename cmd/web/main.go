package main

import "fixa_backend/internal/app"

func main() {
	app.Run()
}
