package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gestaozabele/credrecord/internal/auth"
	"github.com/gestaozabele/credrecord/internal/config"
	"github.com/gestaozabele/credrecord/internal/util"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashpass", flag.ContinueOnError)
	fs.SetOutput(stderr)
	check := fs.String("check", "", "hash a ser conferido em vez de gerar um novo")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || util.RequireString(fs.Arg(0), "password") != nil {
		fmt.Fprintln(stderr, "usage: hashpass [-check <hash>] <password>")
		return 1
	}
	password := fs.Arg(0)

	if *check != "" {
		ok, err := auth.Verify(password, *check)
		if err != nil {
			fmt.Fprintf(stderr, "verify error: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintln(stdout, "mismatch")
			return 1
		}
		fmt.Fprintln(stdout, "ok")
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	hasher, err := auth.NewHasher(cfg.Hash)
	if err != nil {
		fmt.Fprintf(stderr, "hash error: %v\n", err)
		return 1
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		fmt.Fprintf(stderr, "hash error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, hash)
	return 0
}
