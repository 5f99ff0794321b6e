package main

import "medisync/internal/cli"

func main() {
	cli.Execute()
}
