package main

import "github.com/csakala/tableside/cmd"

func main() {
	cmd.Execute()
}
