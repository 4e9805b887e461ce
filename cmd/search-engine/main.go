package main

import "github.com/pgcurious/search-engine/internal/cli"

func main() {
	cli.Execute()
}
