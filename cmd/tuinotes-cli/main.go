package main

import "tuinotes/cmd/tuinotes-cli/cmd"

func main() {
	cmd.Execute()
}
