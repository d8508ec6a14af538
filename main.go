package main

import "github.com/nikhil-reddy05/auto-captions/internal/cli"

func main() {
	cli.Main()
}
