package main

import "github.com/orgball2608/subscraper/internal/cli"

func main() {
	cli.Execute()
}
