// sprocketc - Sprocket to Lua compiler
//
// Translates a Sprocket game script into Lua for the host engine and
// optionally packs the result into a .spkg archive next to a manifest.
// Uses manual argument parsing so flags and the input file can appear
// in any order.
package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanity-io/litter"

	"github.com/sprocket-lang/sprocket"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var version = "dev"

const (
	shortUsage = "usage: sprocketc [-o output.lua] [-d] [-pack] file.spk"
	longUsage  = `Arguments:
  -o output.lua     write generated Lua to this path
                    (default: input path with .lua extension)
  -pack             also write a .spkg archive containing the generated
                    script and its manifest

Debugging arguments:
  -d                print parsed AST to stderr and exit

Other:
  -h, --help        show this help message
  -version          show sprocketc version and exit
`
)

func main() {
	var inputPath string
	outputPath := ""
	dumpAST := false
	pack := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-o":
			if i+1 >= len(args) {
				errorExitf("flag needs an argument: -o")
			}
			i++
			outputPath = args[i]
		case "-d":
			dumpAST = true
		case "-pack":
			pack = true
		case "-version", "--version":
			fmt.Println("sprocketc " + version + " (sprocket " + sprocket.Version + ")")
			os.Exit(0)
		case "-h", "--help":
			fmt.Println(shortUsage)
			fmt.Println()
			fmt.Print(longUsage)
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				errorExitf("unknown flag: %s", arg)
			}
			if inputPath != "" {
				errorExitf("only one input file is supported")
			}
			inputPath = arg
		}
	}

	if inputPath == "" {
		errorExitf("%s", shortUsage)
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		errorExitf("%v", err)
	}

	prog, err := sprocket.Compile(string(src))
	if err != nil {
		errorExitf("%v", err)
	}

	if dumpAST {
		fmt.Fprintln(os.Stderr, litter.Sdump(prog.AST()))
		os.Exit(0)
	}

	lua := prog.Generate(nil)

	if outputPath == "" {
		outputPath = replaceExt(inputPath, ".lua")
	}
	if err := os.WriteFile(outputPath, []byte(lua), 0o644); err != nil {
		errorExitf("%v", err)
	}

	if pack {
		archivePath := replaceExt(inputPath, ".spkg")
		if err := writePackage(archivePath, inputPath, lua); err != nil {
			errorExitf("%v", err)
		}
	}
}

// manifest is the companion document packed beside the generated script.
type manifest struct {
	Name     string `json:"name"`
	Entry    string `json:"entry"`
	Compiler string `json:"compiler"`
	Version  string `json:"version"`
}

// writePackage writes a zip archive holding the generated script as
// main.lua plus a manifest.json naming it as the entry point.
func writePackage(archivePath, inputPath, lua string) error {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	doc, err := json.MarshalIndent(manifest{
		Name:     name,
		Entry:    "main.lua",
		Compiler: "sprocketc",
		Version:  sprocket.Version,
	}, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, entry := range []struct {
		name string
		data []byte
	}{
		{"main.lua", []byte(lua)},
		{"manifest.json", doc},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(entry.data); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// replaceExt swaps path's extension for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
