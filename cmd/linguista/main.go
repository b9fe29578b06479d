package main

import "github.com/linguista/linguista/cmd/linguista/cmd"

func main() {
	cmd.Execute()
}
