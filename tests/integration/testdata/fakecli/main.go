// Command fakecli stands in for the subsurface-investigation CLI during
// integration tests. Its behavior is selected via FAKECLI_MODE:
//
//	"" or "ok"  answer every command successfully
//	"no-create" reject "create" with an unknown-command error, accept the rest
//	"fail"      fail every command with a stderr message
//
// Every invocation appends its tab-joined arguments to FAKECLI_RECORD, and
// when a --input flag is present the file content is copied to FAKECLI_DUMP.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	args := os.Args[1:]

	if record := os.Getenv("FAKECLI_RECORD"); record != "" {
		f, err := os.OpenFile(record, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			fmt.Fprintln(f, strings.Join(args, "\t"))
			f.Close()
		}
	}

	if dump := os.Getenv("FAKECLI_DUMP"); dump != "" {
		for i, a := range args {
			if a == "--input" && i+1 < len(args) {
				if data, err := os.ReadFile(args[i+1]); err == nil {
					os.WriteFile(dump, data, 0o644)
				}
			}
		}
	}

	mode := os.Getenv("FAKECLI_MODE")
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	switch mode {
	case "fail":
		fmt.Fprintln(os.Stderr, "database connection failed")
		os.Exit(1)
	case "no-create":
		if command == "create" {
			fmt.Fprintln(os.Stderr, "Unknown command: create")
			os.Exit(2)
		}
	}

	switch command {
	case "config":
		fmt.Println(`{"data":{"profiles":[{"name":"default"},{"name":"site-a"}]}}`)
	case "search":
		fmt.Println(`[{"id":"p-1","name":"Harbor Extension","projectNo":"2024-017","customer":"Acme Geo","status":"active"}]`)
	case "export":
		fmt.Println("ok")
	case "create":
		fmt.Println("Created 0 drillings")
	case "import":
		fmt.Println("Imported coordinates")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		os.Exit(2)
	}
}
