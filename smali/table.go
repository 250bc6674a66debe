// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

// Row is one instruction table entry: a fixed mapping from an 8-bit
// opcode to its mnemonic, format id, nibble-format string, length in
// code units, and syntax template. The table is static data, authored
// once and committed — it is never scraped or regenerated at runtime
// (spec §9, Instruction-table loading).
type Row struct {
	Opcode   byte
	Mnemonic string
	FormatID string
	Format   string
	InsnLen  int
	Syntax   string
}

// Table maps an opcode byte to its Row. Opcodes with no documented
// meaning are entered as "unused" 1-code-unit placeholders so every
// byte value 0x00-0xFF resolves to a row with InsnLen in {1, 2, 3, 5}.
var Table = make(map[byte]Row, 256)

func reg(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "10x", "00|op", 1, ""}
}

func fmt11x(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "11x", "AA|op", 1, "vAA"}
}

func fmt12x(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "12x", "B|A|op", 1, "vA, vB"}
}

func fmt11n(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "11n", "B|A|op", 1, "vA, #+B"}
}

func fmt10t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "10t", "AA|op", 1, "+AA"}
}

func fmt20t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "20t", "00|op AAAA", 2, "+AAAA"}
}

func fmt21t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "21t", "AA|op BBBB", 2, "vAA, +BBBB"}
}

func fmt21s(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "21s", "AA|op BBBB", 2, "vAA, #+BBBB"}
}

func fmt21h(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "21h", "AA|op BBBB", 2, "vAA, #+BBBB"}
}

func fmt21c(opcode byte, mnemonic, kind string) {
	Table[opcode] = Row{opcode, mnemonic, "21c", "AA|op BBBB", 2, "vAA, " + kind + "@BBBB"}
}

func fmt22x(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "22x", "AA|op BBBB", 2, "vAA, vBBBB"}
}

func fmt23x(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "23x", "AA|op CC|BB", 2, "vAA, vBB, vCC"}
}

func fmt22b(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "22b", "AA|op CC|BB", 2, "vAA, vBB, #+CC"}
}

func fmt22t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "22t", "B|A|op CCCC", 2, "vA, vB, +CCCC"}
}

func fmt22s(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "22s", "B|A|op CCCC", 2, "vA, vB, #+CCCC"}
}

func fmt22c(opcode byte, mnemonic, kind string) {
	Table[opcode] = Row{opcode, mnemonic, "22c", "B|A|op CCCC", 2, "vA, vB, " + kind + "@CCCC"}
}

func fmt32x(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "32x", "00|op AAAA BBBB", 3, "vAAAA, vBBBB"}
}

func fmt30t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "30t", "00|op AAAAlo AAAAhi", 3, "+AAAAAAAA"}
}

func fmt31i(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "31i", "AA|op BBBBlo BBBBhi", 3, "vAA, #+BBBBBBBB"}
}

func fmt31c(opcode byte, mnemonic, kind string) {
	Table[opcode] = Row{opcode, mnemonic, "31c", "AA|op BBBBlo BBBBhi", 3, "vAA, " + kind + "@BBBBBBBB"}
}

func fmt31t(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "31t", "AA|op BBBBlo BBBBhi", 3, "vAA, +BBBBBBBB"}
}

func fmt35c(opcode byte, mnemonic, kind string) {
	Table[opcode] = Row{opcode, mnemonic, "35c", "A|G|op BBBB F|E|D|C",
		3, "{vC, vD, vE, vF, vG}, " + kind + "@BBBB"}
}

func fmt3rc(opcode byte, mnemonic, kind string) {
	Table[opcode] = Row{opcode, mnemonic, "3rc", "AA|op BBBB CCCC",
		3, "{vCCCC .. vNNNN}, " + kind + "@BBBB"}
}

func fmt51l(opcode byte, mnemonic string) {
	Table[opcode] = Row{opcode, mnemonic, "51l", "AA|op BBBBlo BBBB BBBB BBBBhi",
		5, "vAA, #+BBBBBBBBBBBBBBBB"}
}

func init() {
	for i := 0; i < 256; i++ {
		reg(byte(i), "unused")
	}

	reg(0x00, "nop")
	fmt12x(0x01, "move")
	fmt22x(0x02, "move/from16")
	fmt32x(0x03, "move/16")
	fmt12x(0x04, "move-wide")
	fmt22x(0x05, "move-wide/from16")
	fmt32x(0x06, "move-wide/16")
	fmt12x(0x07, "move-object")
	fmt22x(0x08, "move-object/from16")
	fmt32x(0x09, "move-object/16")
	fmt11x(0x0a, "move-result")
	fmt11x(0x0b, "move-result-wide")
	fmt11x(0x0c, "move-result-object")
	fmt11x(0x0d, "move-exception")
	reg(0x0e, "return-void")
	fmt11x(0x0f, "return")
	fmt11x(0x10, "return-wide")
	fmt11x(0x11, "return-object")
	fmt11n(0x12, "const/4")
	fmt21s(0x13, "const/16")
	fmt31i(0x14, "const")
	fmt21h(0x15, "const/high16")
	fmt21s(0x16, "const-wide/16")
	fmt31i(0x17, "const-wide/32")
	fmt51l(0x18, "const-wide")
	fmt21h(0x19, "const-wide/high16")
	fmt21c(0x1a, "const-string", "string")
	fmt31c(0x1b, "const-string/jumbo", "string")
	fmt21c(0x1c, "const-class", "type")
	fmt11x(0x1d, "monitor-enter")
	fmt11x(0x1e, "monitor-exit")
	fmt21c(0x1f, "check-cast", "type")
	fmt22c(0x20, "instance-of", "type")
	fmt12x(0x21, "array-length")
	fmt21c(0x22, "new-instance", "type")
	fmt22c(0x23, "new-array", "type")
	fmt35c(0x24, "filled-new-array", "type")
	fmt3rc(0x25, "filled-new-array/range", "type")
	fmt31t(0x26, "fill-array-data")
	fmt11x(0x27, "throw")
	fmt10t(0x28, "goto")
	fmt20t(0x29, "goto/16")
	fmt30t(0x2a, "goto/32")
	fmt31t(0x2b, "packed-switch")
	fmt31t(0x2c, "sparse-switch")
	fmt23x(0x2d, "cmpl-float")
	fmt23x(0x2e, "cmpg-float")
	fmt23x(0x2f, "cmpl-double")
	fmt23x(0x30, "cmpg-double")
	fmt23x(0x31, "cmp-long")

	ifOpcodes := []string{"if-eq", "if-ne", "if-lt", "if-ge", "if-gt", "if-le"}
	for i, name := range ifOpcodes {
		fmt22t(byte(0x32+i), name)
	}
	ifZOpcodes := []string{"if-eqz", "if-nez", "if-ltz", "if-gez", "if-gtz", "if-lez"}
	for i, name := range ifZOpcodes {
		fmt21t(byte(0x38+i), name)
	}

	arrayOps := []string{"aget", "aget-wide", "aget-object", "aget-boolean", "aget-byte", "aget-char", "aget-short"}
	for i, name := range arrayOps {
		fmt23x(byte(0x44+i), name)
	}
	aputOps := []string{"aput", "aput-wide", "aput-object", "aput-boolean", "aput-byte", "aput-char", "aput-short"}
	for i, name := range aputOps {
		fmt23x(byte(0x4b+i), name)
	}
	igetOps := []string{"iget", "iget-wide", "iget-object", "iget-boolean", "iget-byte", "iget-char", "iget-short"}
	for i, name := range igetOps {
		fmt22c(byte(0x52+i), name, "field")
	}
	iputOps := []string{"iput", "iput-wide", "iput-object", "iput-boolean", "iput-byte", "iput-char", "iput-short"}
	for i, name := range iputOps {
		fmt22c(byte(0x59+i), name, "field")
	}
	sgetOps := []string{"sget", "sget-wide", "sget-object", "sget-boolean", "sget-byte", "sget-char", "sget-short"}
	for i, name := range sgetOps {
		fmt21c(byte(0x60+i), name, "field")
	}
	sputOps := []string{"sput", "sput-wide", "sput-object", "sput-boolean", "sput-byte", "sput-char", "sput-short"}
	for i, name := range sputOps {
		fmt21c(byte(0x67+i), name, "field")
	}

	invokeOps := []string{"invoke-virtual", "invoke-super", "invoke-direct", "invoke-static", "invoke-interface"}
	for i, name := range invokeOps {
		fmt35c(byte(0x6e+i), name, "meth")
	}
	// 0x73 unused
	invokeRangeOps := []string{"invoke-virtual/range", "invoke-super/range", "invoke-direct/range", "invoke-static/range", "invoke-interface/range"}
	for i, name := range invokeRangeOps {
		fmt3rc(byte(0x74+i), name, "meth")
	}
	// 0x79, 0x7a unused

	unaryOps := []string{"neg-int", "not-int", "neg-long", "not-long", "neg-float", "neg-double",
		"int-to-long", "int-to-float", "int-to-double", "long-to-int", "long-to-float", "long-to-double",
		"float-to-int", "float-to-long", "float-to-double", "double-to-int", "double-to-long", "double-to-float",
		"int-to-byte", "int-to-char", "int-to-short"}
	for i, name := range unaryOps {
		fmt12x(byte(0x7b+i), name)
	}

	binOps := []string{"add-int", "sub-int", "mul-int", "div-int", "rem-int", "and-int", "or-int", "xor-int", "shl-int", "shr-int", "ushr-int",
		"add-long", "sub-long", "mul-long", "div-long", "rem-long", "and-long", "or-long", "xor-long", "shl-long", "shr-long", "ushr-long",
		"add-float", "sub-float", "mul-float", "div-float", "rem-float",
		"add-double", "sub-double", "mul-double", "div-double", "rem-double"}
	for i, name := range binOps {
		fmt23x(byte(0x90+i), name)
	}

	bin2addrOps := []string{"add-int/2addr", "sub-int/2addr", "mul-int/2addr", "div-int/2addr", "rem-int/2addr", "and-int/2addr", "or-int/2addr", "xor-int/2addr", "shl-int/2addr", "shr-int/2addr", "ushr-int/2addr",
		"add-long/2addr", "sub-long/2addr", "mul-long/2addr", "div-long/2addr", "rem-long/2addr", "and-long/2addr", "or-long/2addr", "xor-long/2addr", "shl-long/2addr", "shr-long/2addr", "ushr-long/2addr",
		"add-float/2addr", "sub-float/2addr", "mul-float/2addr", "div-float/2addr", "rem-float/2addr",
		"add-double/2addr", "sub-double/2addr", "mul-double/2addr", "div-double/2addr", "rem-double/2addr"}
	for i, name := range bin2addrOps {
		fmt12x(byte(0xb0+i), name)
	}

	litOps16 := []string{"add-int/lit16", "rsub-int", "mul-int/lit16", "div-int/lit16", "rem-int/lit16", "and-int/lit16", "or-int/lit16", "xor-int/lit16"}
	for i, name := range litOps16 {
		fmt22s(byte(0xd0+i), name)
	}
	litOps8 := []string{"add-int/lit8", "rsub-int/lit8", "mul-int/lit8", "div-int/lit8", "rem-int/lit8", "and-int/lit8", "or-int/lit8", "xor-int/lit8", "shl-int/lit8", "shr-int/lit8", "ushr-int/lit8"}
	for i, name := range litOps8 {
		fmt22b(byte(0xd8+i), name)
	}

	fmt35c(0xfc, "invoke-custom", "call_site")
	fmt3rc(0xfd, "invoke-custom/range", "call_site")
	fmt21c(0xfe, "const-method-handle", "method_handle")
	fmt21c(0xff, "const-method-type", "proto")
}
