package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
)

// keygen generates an RSA keypair for the identity service and writes it as
// PKCS#8 private / PKIX public PEM files.
func main() {
	var (
		bits        = flag.Int("bits", 2048, "RSA key size in bits (minimum 2048)")
		privateFile = flag.String("private", "private_key.pem", "private key output path")
		publicFile  = flag.String("public", "public_key.pem", "public key output path")
	)
	flag.Parse()

	if *bits < 2048 {
		fmt.Fprintln(os.Stderr, "key size must be at least 2048 bits")
		os.Exit(1)
	}

	key, err := rsa.GenerateKey(rand.Reader, *bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate key: %v\n", err)
		os.Exit(1)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal private key: %v\n", err)
		os.Exit(1)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal public key: %v\n", err)
		os.Exit(1)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	if err := os.WriteFile(*privateFile, privPEM, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *privateFile, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*publicFile, pubPEM, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *publicFile, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s and %s (%d bits)\n", *privateFile, *publicFile, *bits)
}
