package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/lcgerke/localhub/internal/errors"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w, preferring the friendly form of a HubError
func printError(w io.Writer, err error) {
	var hubErr *errors.HubError
	if stderrors.As(err, &hubErr) {
		fmt.Fprintf(w, "Error: %s\n", hubErr.UserFriendlyMessage())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
