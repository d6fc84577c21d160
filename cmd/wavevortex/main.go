// Command wavevortex encrypts or decrypts stdin to stdout using the
// Wave-Vortex stream cipher, keyed by a password read from the
// WAVEVORTEX_PASSWORD environment variable.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/1878580314/wave-vortex/stream"
)

func main() {
	flag.Parse()

	password := os.Getenv("WAVEVORTEX_PASSWORD")
	if password == "" {
		log.Fatal("WAVEVORTEX_PASSWORD must be set")
	}

	switch a := flag.Arg(0); a {
	case "encrypt":
		if err := stream.EncryptStream(os.Stdout, os.Stdin, []byte(password)); err != nil {
			log.Fatal("encrypt failed: ", err)
		}
	case "decrypt":
		if err := stream.DecryptStream(os.Stdout, os.Stdin, []byte(password)); err != nil {
			log.Fatal("decrypt failed: ", err)
		}
	default:
		log.Fatal("invalid op: ", a)
	}
}
