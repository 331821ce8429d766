package main

import "github.com/itsmostafa/papersmith/cmd"

func main() {
	cmd.Execute()
}
