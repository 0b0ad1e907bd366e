package main

import "github.com/alexiusacademia/rcbd/cmd"

func main() {
	cmd.Execute()
}
