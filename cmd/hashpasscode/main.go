// Command hashpasscode prints the Argon2id hash for an admin passcode, for
// seeding BEANLINE_ADMIN_PASSCODE_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/security"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpasscode <passcode>")
		os.Exit(2)
	}

	hash, err := security.HashPasscode(os.Args[1], config.PasscodeConfig{
		ArgonMemoryKB:    64 * 1024,
		ArgonTime:        3,
		ArgonParallelism: 2,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
