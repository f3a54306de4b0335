package main

import "pdfdoctor/internal/cli"

func main() {
	cli.Execute()
}
