package main

import "github.com/alexiusacademia/presize/cmd"

func main() {
	cmd.Execute()
}
