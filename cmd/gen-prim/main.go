// gen-prim uses internal/prim/gen to generate the per-precision elementary
// functions in internal/prim.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/pfcm/relaxed/internal/prim/gen"
)

var (
	dirFlag = flag.String("dir", "", "directory in which to write output")

	genTestsFlag = flag.Bool("tests", true, "whether or not to generate tests comparing the generated functions with the math libraries")
)

type output struct {
	name string
	gen  func() ([]byte, error)
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gen-prim: ")

	outputs := []output{{"elementary.go", gen.Elementary}}
	if *genTestsFlag {
		outputs = append(outputs, output{"elementary_test.go", gen.ElementaryTest})
	}

	log.Printf("Generating %d functions", len(gen.Funcs))
	for _, o := range outputs {
		if err := write(filepath.Join(*dirFlag, o.name), o.gen); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("All done")
}

func write(path string, generate func() ([]byte, error)) error {
	src, err := generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0666); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}
