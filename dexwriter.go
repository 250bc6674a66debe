// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteSmaliTree renders every class in the container into a .smali file
// tree under outDir, one directory per package component and one file
// per class, mirroring disas_to_files.py's dis_file/write_class.
func (f *File) WriteSmaliTree(outDir string) error {
	for i := range f.ClassDefs {
		if err := f.writeClassFile(outDir, &f.ClassDefs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) writeClassFile(outDir string, cls *ClassDef) error {
	typeName := string(cls.Class)
	if !strings.HasPrefix(typeName, "L") || !strings.HasSuffix(typeName, ";") {
		f.warn(fmt.Sprintf("class descriptor %q is not an object type, skipping", typeName))
		return nil
	}
	relPath := strings.TrimSuffix(strings.TrimPrefix(typeName, "L"), ";")
	classDir := filepath.Join(outDir, filepath.Dir(relPath))
	if err := os.MkdirAll(classDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(outDir, relPath+".smali")

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	super := "Ljava/lang/Object;"
	if cls.HasSuper {
		super = string(cls.Superclass)
	}
	fmt.Fprintf(out, ".class %s%s\n.super %s\n", cls.AccessFlags.String(ContextClass), typeName, super)
	if cls.HasSource {
		fmt.Fprintf(out, ".source %q\n", cls.SourceFile)
	}
	fmt.Fprintln(out)

	if cls.Data == nil {
		return nil
	}
	if len(cls.Data.StaticFields) > 0 {
		fmt.Fprintln(out, "\n# static fields")
	}
	for _, fl := range cls.Data.StaticFields {
		fmt.Fprintf(out, ".field %s%s:%s\n", fl.AccessFlags.String(ContextField), fl.Field.Name, fl.Field.Type)
	}
	if len(cls.Data.InstanceFields) > 0 {
		fmt.Fprintln(out, "\n# instance fields")
	}
	for _, fl := range cls.Data.InstanceFields {
		fmt.Fprintf(out, ".field %s%s:%s\n", fl.AccessFlags.String(ContextField), fl.Field.Name, fl.Field.Type)
	}
	if len(cls.Data.DirectMethods) > 0 {
		fmt.Fprintln(out, "\n# direct methods")
	}
	for _, m := range cls.Data.DirectMethods {
		f.writeMethod(out, &m)
	}
	if len(cls.Data.VirtualMethods) > 0 {
		fmt.Fprintln(out, "\n# virtual methods")
	}
	for _, m := range cls.Data.VirtualMethods {
		f.writeMethod(out, &m)
	}
	return nil
}

func (f *File) writeMethod(out *os.File, em *EncodedMethod) {
	params := make([]string, len(em.Method.Proto.Parameters))
	for i, p := range em.Method.Proto.Parameters {
		params[i] = string(p)
	}
	registers := 0
	if em.Code != nil {
		registers = int(em.Code.RegistersSize)
	}
	fmt.Fprintf(out, "\n.method %s%s(%s)%s\n    .registers %d\n",
		em.AccessFlags.String(ContextMethod), em.Method.Name,
		strings.Join(params, ""), string(em.Method.Proto.ReturnType), registers)

	if em.Code != nil {
		i := uint32(0)
		insns := em.Code.Insns
		for int(i) < len(insns) {
			tokens, size := f.Disassemble(insns[i:], em.Code.InsnsOff+i)
			if size == 0 {
				fmt.Fprintf(out, "    failed to disassemble at offset %d\n", em.Code.InsnsOff+i)
				break
			}
			fmt.Fprint(out, "    ")
			for _, t := range tokens {
				fmt.Fprint(out, t.Text)
			}
			fmt.Fprintln(out)
			i += uint32(size)
		}
	}
	fmt.Fprintln(out, ".end method")
}
