// cmd/aprt-confusion/main.go
package main

import (
	"aprt/internal/app"
	"aprt/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
