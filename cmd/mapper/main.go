package main

import (
	"context"
	"fmt"
	"os"

	hadoop "github.com/doedotdev/uc-cloud-computing-hadoop"
)

// Signals keep their default disposition: a Hadoop task kill terminates the
// process even while it is blocked reading stdin.
func main() {
	must(hadoop.NewRootCommand().ExecuteContext(context.Background()))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
