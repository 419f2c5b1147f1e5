package main

import "github.com/mosif16/codex-skills/cmd"

func main() {
	cmd.Execute()
}
