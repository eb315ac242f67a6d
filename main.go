package main

import "github.com/hcminh/folio/cmd"

func main() {
	cmd.Execute()
}
