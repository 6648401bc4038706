package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/newswire/pkg/config"
)

type options struct {
	Check bool `long:"check" description:"verify the schema file is up to date instead of writing it"`
	Args  struct {
		Output string `positional-arg-name:"output" default:"schema.json"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	data, err := render()
	if err != nil {
		log.Fatalf("failed to build schema: %v", err)
	}

	if opts.Check {
		current, err := os.ReadFile(opts.Args.Output)
		if err != nil {
			log.Fatalf("failed to read %s: %v", opts.Args.Output, err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			log.Fatalf("%s is stale, run go generate ./pkg/config", opts.Args.Output)
		}
		fmt.Printf("%s is up to date\n", opts.Args.Output)
		return
	}

	if err := os.WriteFile(opts.Args.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", opts.Args.Output)
}

// render produces the indented schema document with a trailing newline
func render() ([]byte, error) {
	schema, err := config.GenerateSchema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
