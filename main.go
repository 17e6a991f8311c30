package main

import "github.com/biblioteca-cpe/console-gateway/cmd"

func main() {
	cmd.Execute()
}
