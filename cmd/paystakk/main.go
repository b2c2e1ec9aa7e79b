package main

import (
	"os"

	"github.com/eurofurence/paystakk/internal/logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logging.NoCtx().Fatal("%v", err)
	}
}
