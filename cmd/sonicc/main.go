// Package main implements the sonic compiler driver (spec 6.3): a
// thin CLI that never contains front-end logic itself, following
// yoru's own cmd/yoruc/main.go in spirit — parse flags, delegate to
// the library packages, translate their results into an exit code.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/project"
	"github.com/exzgit/sonic/internal/sema"
)

const version = "0.1.0-dev"

const defaultTargetTriple = "x86_64-unknown-linux-gnu"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--version":
		fmt.Printf("sonicc version %s\n", version)
		fmt.Printf("go version %s\n", runtime.Version())
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	case "new":
		return runNew(args[1:])
	case "compile":
		return runCompile(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "sonicc: unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "sonic compiler %s\n\n", version)
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  sonicc new <name> [--author name] [--license text]\n")
	fmt.Fprintf(os.Stderr, "  sonicc compile [path] [--debug|--release|--no-opt|-O2|-O3|-Ofast]\n")
	fmt.Fprintf(os.Stderr, "  sonicc --version\n")
	fmt.Fprintf(os.Stderr, "  sonicc --help\n")
}

// runNew scaffolds a fresh project directory named by its first
// argument, writing config.snc and src/main.sn (spec 6.4), grounded
// on the original implementation's generate_project_folder.
func runNew(args []string) int {
	// flag parsing stops at the first non-flag argument, so a leading
	// <name> is split off before the flags that follow it are parsed.
	var name string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	author := fs.String("author", "", "project author recorded in config.snc")
	license := fs.String("license", "", "project license recorded in config.snc")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if name == "" && len(rest) == 1 {
		name, rest = rest[0], nil
	}
	if name == "" || len(rest) != 0 {
		fmt.Fprintln(os.Stderr, "sonicc: new requires exactly one <name> argument")
		return 1
	}

	if err := os.MkdirAll(filepath.Join(name, "src"), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "sonicc: %v\n", err)
		return 1
	}
	cfg := project.Scaffold(name, *author, *license, defaultTargetTriple)
	if err := os.WriteFile(filepath.Join(name, "config.snc"), []byte(cfg), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "sonicc: %v\n", err)
		return 1
	}
	main := project.ScaffoldMain()
	if err := os.WriteFile(filepath.Join(name, "src", "main.sn"), []byte(main), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "sonicc: %v\n", err)
		return 1
	}
	fmt.Printf("created project %q\n", name)
	return 0
}

// runCompile resolves its path argument (a directory treated as
// <dir>/src/main.sn, or a file directly, spec 6.3), runs the full
// analyzer pipeline against it, and flushes diagnostics. The
// optimization-level flags are accepted and otherwise inert, since
// code generation is out of scope (spec 1) — the core "treats" them
// as consumed-not-implemented, same as the CLI surface itself.
func runCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "compile with debug info")
	release := fs.Bool("release", false, "compile with optimizations")
	noOpt := fs.Bool("no-opt", false, "disable all optimizations")
	fs.Bool("O2", false, "optimization level 2")
	fs.Bool("O3", false, "optimization level 3")
	fs.Bool("Ofast", false, "aggressive optimization level")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	_ = debug
	_ = release
	_ = noOpt

	entry := "."
	if fs.NArg() > 0 {
		entry = fs.Arg(0)
	}
	entryFile, err := resolveEntry(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sonicc: %v\n", err)
		return 1
	}

	src, err := os.ReadFile(entryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sonicc: %v\n", err)
		return 1
	}

	root := project.FindRoot(entryFile)
	d := diag.NewEngine()
	result := sema.Analyze(d, root, entryFile, src)
	hh := result.Handoff()

	d.Flush(os.Stderr)
	if hh.HadErrors {
		return 1
	}
	return 0
}

// resolveEntry implements spec 6.3's path argument rule: a directory
// is treated as <dir>/src/main.sn, a file is used directly.
func resolveEntry(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		main := filepath.Join(path, "src", "main.sn")
		if _, err := os.Stat(main); err != nil {
			return "", fmt.Errorf("no src/main.sn under %q", path)
		}
		return main, nil
	}
	return path, nil
}
