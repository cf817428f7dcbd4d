package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/fss"
)

func main() {
	calcNEH := flag.Bool("neh", true, "Whether to record the NEH reference makespan in the converted instances")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Printf("No arguments passed!")
		return
	}
	targetDir := flag.Arg(0)
	files, err := os.ReadDir(targetDir)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if !strings.Contains(f.Name(), ".txt") {
			continue
		}
		fileName := targetDir + "/" + f.Name()
		fmt.Println(fileName)
		file, err := os.Open(fileName)
		if err != nil {
			log.Printf("At %s: %s\n", fileName, err.Error())
			continue
		}
		instances, err := fss.ParseORLibrary(file)
		file.Close()
		if err != nil {
			log.Printf("At %s: %s\n", fileName, err.Error())
			continue
		}

		for _, inst := range instances {
			inst.Comment = fmt.Sprintf("Converted from the OR-Library file %s", f.Name())
			if *calcNEH {
				_, inst.NEHMakespan = fss.NEH(inst)
			}
			outName := fmt.Sprintf("%s/%s.json", targetDir, inst.Name)
			err = fss.WriteInstanceFile(inst, outName)
			if err != nil {
				log.Printf("At %s: %s\n", outName, err.Error())
			}
		}
	}
}
