package main

import "munrodist/cmd"

func main() {
	cmd.Execute()
}
