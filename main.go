package main

import "github.com/Budomar/ProductCatalog/cmd"

func main() {
	cmd.Execute()
}
