package main

import "github.com/ibskk/subscription-tracker/cmd"

func main() {
	cmd.Execute()
}
