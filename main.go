package main

import "github.com/ethanolivertroy/depcheck/cmd"

func main() {
	cmd.Execute()
}
