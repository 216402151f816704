// cmd/fzrank/main.go
package main

import (
	"fzrank/internal/app"
	"fzrank/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
