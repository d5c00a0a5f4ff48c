package main

import "product-builder/cmd"

func main() {
	cmd.Execute()
}
