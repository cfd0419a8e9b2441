package main

import "github.com/aalvaropc/astra/internal/cli"

func main() {
	cli.Execute()
}
