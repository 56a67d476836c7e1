package main

import "github.com/Francis1918/citamed_backend/cmd"

func main() {
	cmd.Execute()
}
