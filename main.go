package main

import "github.com/nchapman/murmur/cmd"

func main() {
	cmd.Execute()
}
