// Command lacuna hides a JPEG payload inside a PDF and recovers it again.
//
// Usage:
//
//	lacuna embed -pdf cover.pdf -payload secret.jpg -out stego.pdf [-verify]
//	lacuna extract -pdf stego.pdf -out recovered.jpg [-object N]
//
// Flag defaults may also come from the environment (LACUNA_OUT,
// LACUNA_VERIFY, LACUNA_DIAG_DIR), loaded from a .env file in the working
// directory when present.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lacuna"
	"lacuna/internal/config"
)

func main() {
	log.SetFlags(0)

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		log.Printf("unknown command %q", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  lacuna embed -pdf cover.pdf -payload secret.jpg -out stego.pdf [-verify]")
	fmt.Fprintln(os.Stderr, "  lacuna extract -pdf stego.pdf -out recovered.jpg [-object N] [-diag dir]")
}

func runEmbed(args []string) error {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	pdf := fs.String("pdf", "", "cover PDF file")
	payload := fs.String("payload", "", "JPEG payload to hide")
	out := fs.String("out", config.EnvOr("LACUNA_OUT", ""), "output PDF file")
	verify := fs.Bool("verify", config.EnvBool("LACUNA_VERIFY"), "validate the output PDF after splicing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pdf == "" || *payload == "" || *out == "" {
		fs.Usage()
		return fmt.Errorf("embed requires -pdf, -payload, and -out")
	}

	emb := lacuna.Cover(*pdf).Payload(*payload)
	if *verify {
		emb = emb.Verify()
	}
	rep, warnings, err := emb.To(*out)
	printReport(rep, warnings)
	return err
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	pdf := fs.String("pdf", "", "PDF file carrying a hidden payload")
	out := fs.String("out", config.EnvOr("LACUNA_OUT", ""), "output file for the recovered payload")
	object := fs.Int("object", 0, "object number to extract (default: highest in file)")
	diag := fs.String("diag", config.EnvOr("LACUNA_DIAG_DIR", ""), "directory for diagnostic artifacts on failure")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pdf == "" || *out == "" {
		fs.Usage()
		return fmt.Errorf("extract requires -pdf and -out")
	}

	ext := lacuna.Open(*pdf)
	if *object != 0 {
		ext = ext.Object(*object)
	}
	if *diag != "" {
		ext = ext.DiagnosticsDir(*diag)
	}
	rep, warnings, err := ext.To(*out)
	printReport(rep, warnings)
	return err
}

func printReport(rep *lacuna.Report, warnings []lacuna.Warning) {
	if rep == nil {
		return
	}
	for _, s := range rep.Steps {
		log.Printf("%-10s %s", s.Name, s.Detail)
	}
	if len(warnings) > 0 {
		log.Printf("warnings: %s", lacuna.FormatWarnings(warnings))
	}
}
