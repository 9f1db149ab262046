// cmd/localign/main.go
package main

import (
	"localign/internal/app"
	"localign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
