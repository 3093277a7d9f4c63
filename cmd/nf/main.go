// nf - run a command and get notified when it finishes

package main

import (
	"os"

	"github.com/notifyfinish/nf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
