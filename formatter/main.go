package main

import (
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/fss"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	fileName := os.Args[1]
	inst, err := fss.ReadInstanceFile(fileName)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
	outName := strings.ReplaceAll(fileName, ".json", ".txt")
	if len(os.Args) > 2 {
		outName = os.Args[2]
	}
	err = fss.WriteSolutionFile(inst, outName)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
}
