package main

import "github.com/csproj/cmd"

func main() {
	cmd.Execute()
}
