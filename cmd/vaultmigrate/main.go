package main

import "vaultmigrate/cmd/vaultmigrate/cmd"

func main() {
	cmd.Execute()
}
