package main

import "github.com/deploymenttheory/go-certtool/cmd"

func main() {
	cmd.Execute()
}
