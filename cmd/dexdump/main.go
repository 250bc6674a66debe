// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/saferwall/dex"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
)

var (
	wantHeader   bool
	wantStrings  bool
	wantClasses  bool
	wantMethods  bool
	verbose      bool
	smaliOutDir  string
)

func prettyPrint(buf []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return out.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// verboseUTF16 annotates s with the length in bytes of its UTF-16LE
// encoding, for diagnostics; s is returned unchanged if encoding fails.
func verboseUTF16(s string) string {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.String(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s (%d UTF-16 bytes)", s, len(encoded))
}

func dumpDex(filename string, cmd *cobra.Command) {
	log.Printf("processing %s", filename)

	f, err := dex.New(filename, &dex.Options{})
	if err != nil {
		log.Printf("error opening %s: %v", filename, err)
		return
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		log.Printf("error parsing %s: %v", filename, err)
		return
	}
	for _, w := range f.Warnings {
		log.Printf("warning: %s", w)
	}

	if wantHeader {
		b, _ := json.Marshal(f.Header)
		fmt.Println(prettyPrint(b))
	}

	if wantClasses {
		b, _ := json.Marshal(f.ClassDefs)
		fmt.Println(prettyPrint(b))
	}

	if wantMethods {
		for _, cls := range f.ClassDefs {
			if cls.Data == nil {
				continue
			}
			for _, m := range append(cls.Data.DirectMethods, cls.Data.VirtualMethods...) {
				name := m.Method.Name
				if verbose {
					name = verboseUTF16(name)
				}
				fmt.Printf("%s->%s\n", m.Method.Class, name)
			}
		}
	}

	if smaliOutDir != "" {
		if err := f.WriteSmaliTree(smaliOutDir); err != nil {
			log.Printf("error writing smali tree for %s: %v", filename, err)
		}
	}
}

func parse(cmd *cobra.Command, args []string) {
	path := args[0]
	if !isDirectory(path) {
		dumpDex(path, cmd)
		return
	}
	var files []string
	filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	for _, file := range files {
		dumpDex(file, cmd)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dexdump",
		Short: "A Dex container parser and Dalvik bytecode disassembler",
		Long:  "Parses Android .dex containers and disassembles Dalvik bytecode to Smali-style text, built by Saferwall",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.0.1")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump a .dex file or a directory of .dex files",
		Args:  cobra.MinimumNArgs(1),
		Run:   parse,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&wantHeader, "header", "", false, "Dump the Dex header")
	dumpCmd.Flags().BoolVarP(&wantClasses, "classes", "", false, "Dump class definitions")
	dumpCmd.Flags().BoolVarP(&wantMethods, "methods", "", false, "List method references")
	dumpCmd.Flags().StringVarP(&smaliOutDir, "smali-out", "o", "", "Write a .smali directory tree to this path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
