package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(logrus.StandardLogger()).Execute(); err != nil {
		os.Exit(1)
	}
}
