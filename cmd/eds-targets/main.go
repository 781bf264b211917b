package main

import (
	"multicomponent/internal/appshell"
	"multicomponent/internal/targetsapp"
)

func main() { appshell.Main(targetsapp.RunContext) }
