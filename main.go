package main

import "github.com/casadev/casa/cmd"

func main() {
	cmd.Execute()
}
