package main

import "github.com/mcoot/secretsanta-go/internal/cli"

func main() {
	cli.Execute()
}
