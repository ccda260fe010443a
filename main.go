package main

import (
	"log"

	"github.com/lil-jrg/cv-sorter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
