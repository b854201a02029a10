// Command schema-generator writes stroke.schema.json from the config types.
// It runs through go:generate in the config package.
package main

import (
	"os"
	"path/filepath"

	"github.com/grovetools/stroke/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	output := pflag.StringP("output", "o", "../stroke.schema.json", "Path of the generated schema")
	pflag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		logrus.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		logrus.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		logrus.Fatalf("Error writing schema file: %v", err)
	}

	logrus.Infof("Generated config schema at %s", *output)
}
