// cmd/moonshine-eval/main.go
package main

import (
	"moonshine/internal/appshell"
	"moonshine/internal/evalapp"
)

func main() { appshell.Main(evalapp.RunContext) }
