// cmd/moonshine-sourcing/main.go
package main

import (
	"moonshine/internal/appshell"
	"moonshine/internal/sourcingapp"
)

func main() { appshell.Main(sourcingapp.RunContext) }
