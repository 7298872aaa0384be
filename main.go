package main

import "github.com/KaramelBytes/tabcheck-cli/cmd"

func main() {
	cmd.Execute()
}
