package main

import "coingen/cmd"

func main() {
	cmd.Execute()
}
