package main

import "github.com/loog-project/sidebyside/cmd"

func main() {
	cmd.Execute()
}
