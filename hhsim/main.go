package main

import "github.com/sarchlab/hhsim/hhsim/cmd"

func main() {
	cmd.Execute()
}
