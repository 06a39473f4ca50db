package main

import "github.com/FESOM/metis-wizard/internal/cli"

func main() {
	cli.Execute()
}
