package main

import (
	"os"

	"github.com/OnitiFR/gofiledl/cmd/gofiledl/client"
	"github.com/OnitiFR/gofiledl/cmd/gofiledl/topics"
)

func main() {
	client.InitExitMessage()

	err := topics.Execute()

	msg := client.GetExitMessage()
	msg.Display()

	if err != nil {
		os.Exit(1)
	}
}
