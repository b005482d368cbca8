package main

import "github.com/bashtech/gpacalc-crawler/internal/cli"

func main() {
	cli.Execute()
}
