package main

import "github.com/thatkingore/mathematical-modelling/internal/cli"

func main() {
	cli.Execute()
}
