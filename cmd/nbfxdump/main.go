// Command nbfxdump decodes an NBFX-encoded document and prints it as XML.
// It is a thin driver over the nbfx library: sourcing input (file or
// stdin), parsing flags, and wiring an optional dictionary belong here, not
// in the decoder itself.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nbfx-go/nbfx"
)

func main() {
	app := &cli.App{
		Name:  "nbfxdump",
		Usage: "decode a .NET Binary XML (NBFX) document and print it as XML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dict",
				Usage: "path to a JSON object mapping dictionary keys (decimal or 0x-hex) to strings",
			},
			&cli.BoolFlag{
				Name:  "default-dict",
				Usage: "seed the dictionary with a small built-in set of well-known SOAP/WS-* strings",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "maximum element nesting depth before failing with a nesting-limit error",
				Value: 512,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "emit a structured trace line naming the decoded root element",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var input []byte
	var err error
	if path := c.Args().First(); path != "" {
		input, err = os.ReadFile(path)
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	dict, err := loadDictionary(c)
	if err != nil {
		return err
	}

	opts := []nbfx.Option{
		nbfx.WithMaxDepth(c.Int("max-depth")),
	}
	if dict != nil {
		opts = append(opts, nbfx.WithDictionary(dict))
	}
	if c.Bool("trace") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building tracer: %w", err)
		}
		defer logger.Sync()
		opts = append(opts, nbfx.WithTracer(nbfx.NewZapTracer(logger.Sugar())))
	}

	d := nbfx.NewDecoder(opts...)
	el, err := d.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	xmlText, err := el.EncodeXML()
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(xmlText)
	return nil
}

// loadDictionary merges -default-dict (if set) with the contents of the
// file at -dict (if set), the latter taking precedence on key collisions.
func loadDictionary(c *cli.Context) (nbfx.MapDictionary, error) {
	var dict nbfx.MapDictionary
	if c.Bool("default-dict") {
		dict = nbfx.DefaultWellKnownStrings()
	}

	path := c.String("dict")
	if path == "" {
		return dict, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}
	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing dictionary JSON: %w", err)
	}
	if dict == nil {
		dict = make(nbfx.MapDictionary, len(entries))
	}
	for k, v := range entries {
		key, err := parseDictKey(k)
		if err != nil {
			return nil, err
		}
		dict[key] = v
	}
	return dict, nil
}

func parseDictKey(s string) (uint32, error) {
	var key uint32
	_, err := fmt.Sscanf(s, "0x%x", &key)
	if err == nil {
		return key, nil
	}
	_, err = fmt.Sscanf(s, "%d", &key)
	if err != nil {
		return 0, fmt.Errorf("dictionary key %q is not a decimal or 0x-hex integer", s)
	}
	return key, nil
}
