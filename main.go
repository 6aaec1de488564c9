package main

import "github.com/nikogura/archetype-match/cmd"

func main() {
	cmd.Execute()
}
