package main

import "github.com/nocookie2/gnsscope/cmd"

func main() {
	cmd.Execute()
}
