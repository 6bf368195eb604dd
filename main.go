package main

import "batbroom/cmd"

func main() {
	cmd.Execute()
}
