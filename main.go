package main

import "github/chapool/go-transfer/cmd"

func main() {
	cmd.Execute()
}
