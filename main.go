package main

import "github.com/ndurner/chatbot-conversation-converter/cmd"

func main() {
	cmd.Execute()
}
