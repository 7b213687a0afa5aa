package main

import "studytracker/cmd/studytracker-cli/cmd"

func main() {
	cmd.Execute()
}
