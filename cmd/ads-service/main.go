package main

import (
	"os"

	"github.com/diamondjirapat/mango-reach-management-mockup/adsservice"
)

func main() {
	if err := adsservice.Run(); err != nil {
		os.Exit(1)
	}
}
