package main

import "github.com/nfrund/dashboard/cmd/dashctl/cmd"

func main() {
	cmd.Execute()
}
