package main

import "termtap/internal/cli"

func main() {
	cli.Execute()
}
