// scripts/hash_password.go
//
// Prints a bcrypt hash of the given password for APP_PASSWORD_HASH, so
// deployments don't have to keep the shared staff password in plain env.
//
//	go run ./scripts <password>
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash_password <password>")
		os.Exit(2)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	fmt.Println(string(hashed))
}
