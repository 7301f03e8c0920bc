package main

import (
	"fmt"
	"os"

	"luckywheel/pkg/auth"
)

// hashgen prints a bcrypt hash of the given operator password, suitable for
// the ADMIN_PASSWORD_HASH environment variable.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashgen <password>")
		os.Exit(1)
	}

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
