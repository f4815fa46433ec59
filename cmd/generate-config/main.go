package main

import (
	"flag"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"inbetween-sim/internal/config"
	"io"
	"os"
)

var output = flag.String("o", "", "write the config to this file instead of stdout")

// generate-config prints the default simulator configuration as YAML
func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create config file")
		}
		defer file.Close()

		w = file
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}

	if err := enc.Close(); err != nil {
		logrus.WithError(err).Fatal("could not flush config")
	}
}
