package main

import "thoreinstein.com/vcsroot/cmd"

func main() {
	cmd.Execute()
}
