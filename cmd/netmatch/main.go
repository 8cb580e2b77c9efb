package main

import "github.com/OpenTraceLab/netmatch/cmd/netmatch/cmd"

func main() {
	cmd.Execute()
}
