// Package cmd implements the command-line interface for filesan.
package cmd

import (
	"fmt"
	"os"

	"github.com/filesan-cli/filesan/util"
	"github.com/filesan-cli/filesan/where"
	"github.com/gofrs/flock"
)

// lockRoot guards against two runs executing concurrently against the same
// root. The engine itself does not enforce this; the CLI owns the lock file.
func lockRoot(root string) (unlock func()) {
	lock := flock.New(where.Lock(root))

	locked, err := lock.TryLock()
	handleErr(err)
	if !locked {
		handleErr(fmt.Errorf("another %s run is already operating on %s", rootCmd.Use, root))
	}

	return func() {
		util.Ignore(lock.Unlock)
		_ = os.Remove(where.Lock(root))
	}
}
