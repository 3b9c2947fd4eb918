package main

import "github.com/radiofrance/xmlreport/cmd"

func main() {
	cmd.Execute()
}
