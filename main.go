package main

import "github.com/JoshuaShepherd/rethink-content/cmd"

func main() {
	cmd.Execute()
}
