package main

import (
	"log"
	"os"
)

func main() {
	if err := New(os.Stdout).Execute(os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}
