package main

import (
	"multicomponent/internal/app"
	"multicomponent/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
