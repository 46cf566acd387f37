package main

import (
	"os"

	"github.com/arthur-debert/sugary/cmd/sugary"
)

func main() {
	os.Exit(sugary.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
