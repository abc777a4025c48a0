package main

import "github.com/mirtools/rolltok/cmd"

func main() {
	cmd.Execute()
}
