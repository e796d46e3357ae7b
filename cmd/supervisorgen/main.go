// Command supervisorgen renders the typed Client wrappers in methods_gen.go
// from supervisor.Methods.
package main

import (
	"bytes"
	"flag"
	"log"

	"github.com/google/renameio/v2"

	supervisor "github.com/axondata/go-supervisor"
)

func main() {
	out := flag.String("o", "methods_gen.go", "Output file")
	flag.Parse()

	var buf bytes.Buffer
	if err := generateFile(supervisor.Methods).Render(&buf); err != nil {
		log.Fatal(err)
	}
	if err := renameio.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}
