package main

import "github.com/everythingtalent/etsite/cmd/etsite/cmd"

func main() {
	cmd.Execute()
}
