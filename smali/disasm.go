// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package smali

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Logger receives non-fatal warnings raised while disassembling, the
// same shape ExtractPseudoInstructions accepts.
type Logger interface {
	Warnf(format string, args ...interface{})
}

var kindRe = regexp.MustCompile(`\s([a-z_]+)@`)

// Disassemble renders one instruction at address, returning its tokens
// and the number of bytes consumed (spec §4.G). data must start at the
// instruction being decoded; pseudos is the container's precomputed
// pseudo-instruction map, keyed by address.
func Disassemble(pool Pool, data []byte, address uint32, pseudos map[uint32]PseudoInstruction, logger Logger) ([]Token, int) {
	if len(data) < 2 {
		warnf(logger, "short read at %d: fewer than 2 bytes remain", address)
		return nil, 0
	}
	if data[0] == 0x00 && data[1] != 0x00 {
		return disassemblePseudo(data, address, pseudos, logger)
	}

	opcode := data[0]
	row, ok := Table[opcode]
	if !ok {
		warnf(logger, "opcode 0x%02x has no table entry at %d", opcode, address)
		return nil, 0
	}
	byteLen := row.InsnLen * 2
	if len(data) < byteLen {
		warnf(logger, "short read: need %d bytes, have %d", byteLen, len(data))
		return nil, 0
	}

	swapped := EndianSwapShorts(data[:byteLen])
	fields, err := ParseWithFormat(swapped, row.Format)
	if err != nil {
		warnf(logger, "format parse failed for opcode 0x%02x: %v", opcode, err)
		return nil, 0
	}

	syntax := row.Syntax
	if row.FormatID == "35c" {
		syntax = syntax35c(row, fields)
	}

	tokens := []Token{instr(row.Mnemonic)}
	if strings.Contains(row.FormatID, "r") {
		fields['N'] = fields['A'] + fields['C'] - 1
	}

	operandTokens, err := renderOperands(pool, syntax, fields, row.Format, address, logger)
	if err != nil {
		warnf(logger, "%v", err)
	}
	if len(operandTokens) > 0 {
		tokens = append(tokens, space())
		tokens = append(tokens, operandTokens...)
	}
	return tokens, byteLen
}

// syntax35c discovers the pool kind embedded in the row's syntax (the
// word preceding '@') and re-renders the register-list prefix to hold
// exactly A registers (0..5), per spec §4.G step 6.
func syntax35c(row Row, fields Fields) string {
	kind := "meth"
	if m := kindRe.FindStringSubmatch(row.Syntax); len(m) == 2 {
		kind = m[1]
	}
	n := fields['A']
	regs := []string{"C", "D", "E", "F", "G"}
	if int(n) < len(regs) {
		regs = regs[:n]
	}
	return "{" + joinRegs(regs) + "}, " + kind + "@BBBB"
}

func joinRegs(letters []string) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = "v" + l
	}
	return strings.Join(parts, ", ")
}

// renderOperands implements spec §4.G steps 6-7: substitute bound field
// values into the syntax template, then tokenize the result.
func renderOperands(pool Pool, syntax string, fields Fields, format string, address uint32, logger Logger) ([]Token, error) {
	substituted := formatArgsWithSyntax(syntax, fields, format)
	words := strings.Fields(substituted)
	var tokens []Token
	var firstErr error
	prevHadComma := false
	for i, word := range words {
		if i > 0 && !prevHadComma {
			tokens = append(tokens, sep())
		}
		wtoks, err := classifyWord(pool, word, address, logger)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		tokens = append(tokens, wtoks...)
		prevHadComma = strings.HasSuffix(word, ",")
	}
	return tokens, firstErr
}

// formatArgsWithSyntax replaces each run of an identical uppercase
// letter with its hex-digit representation: unsigned (no leading '-')
// when the run is immediately preceded by 'v' or '@' (registers and
// pool indices), signed otherwise.
func formatArgsWithSyntax(syntax string, fields Fields, format string) string {
	var out strings.Builder
	i := 0
	for i < len(syntax) {
		c := syntax[i]
		if c >= 'A' && c <= 'Z' {
			j := i
			for j < len(syntax) && syntax[j] == c {
				j++
			}
			unsigned := i > 0 && (syntax[i-1] == 'v' || syntax[i-1] == '@')
			val := fields[c]
			width := Width(format, c)
			if unsigned {
				out.WriteString(fmt.Sprintf("%x", val))
			} else {
				signed := Sign(val, width)
				if signed < 0 {
					out.WriteString("-" + fmt.Sprintf("%x", -signed))
				} else {
					out.WriteString(fmt.Sprintf("%x", signed))
				}
			}
			i = j
			continue
		}
		out.WriteByte(c)
		i++
	}
	return out.String()
}

// classifyWord turns one whitespace-delimited word of the substituted
// syntax into its token sequence, per spec §4.G step 7.
func classifyWord(pool Pool, word string, addr uint32, logger Logger) ([]Token, error) {
	var prefix, suffix []Token
	for strings.HasPrefix(word, "{") {
		prefix = append(prefix, text("{"))
		word = word[1:]
	}
	for strings.HasSuffix(word, "}") {
		suffix = append([]Token{text("}")}, suffix...)
		word = word[:len(word)-1]
	}
	trailingComma := strings.HasSuffix(word, ",")
	word = strings.TrimSuffix(word, ",")

	var core []Token
	var err error
	switch {
	case word == "..":
		core = []Token{text("..")}
	case strings.HasPrefix(word, "v"):
		v, perr := strconv.ParseInt(word[1:], 16, 64)
		if perr != nil {
			core = []Token{text(word)}
		} else {
			core = []Token{register(v)}
		}
	case strings.HasPrefix(word, "#+"):
		v, perr := strconv.ParseInt(strings.TrimPrefix(word[2:], "-"), 16, 64)
		if perr != nil {
			core = []Token{text(word)}
		} else {
			if strings.HasPrefix(word[2:], "-") {
				v = -v
			}
			core = []Token{integer(v, word)}
		}
	case strings.Contains(word, "@"):
		core, err = renderPoolRef(pool, word, logger)
	case strings.HasPrefix(word, "+"):
		v, perr := strconv.ParseInt(strings.TrimPrefix(word[1:], "-"), 16, 64)
		if perr == nil && strings.HasPrefix(word[1:], "-") {
			v = -v
		}
		core = []Token{address(v, word)}
	default:
		if logger != nil {
			logger.Warnf("unrecognized operand word %q", word)
		}
		core = []Token{text(word)}
	}

	var out []Token
	out = append(out, prefix...)
	out = append(out, core...)
	if trailingComma {
		out = append(out, text(","))
	}
	out = append(out, suffix...)
	return out, err
}

// renderPoolRef expands a "kind@hexindex" word into its sub-token
// sequence, per spec §4.G step 7's per-kind rules.
func renderPoolRef(pool Pool, word string, logger Logger) ([]Token, error) {
	parts := strings.SplitN(word, "@", 2)
	kind, hexIdx := parts[0], parts[1]
	idx64, err := strconv.ParseUint(hexIdx, 16, 32)
	if err != nil {
		return []Token{text(word)}, nil
	}
	idx := uint32(idx64)

	switch kind {
	case "field":
		class, name, typ, err := pool.FieldRef(idx)
		if err != nil {
			return []Token{text(word)}, err
		}
		return []Token{
			text(class), text(";->"), text(name), text(":"), text(typ),
		}, nil
	case "meth":
		class, name, params, ret, insnsOff, err := pool.MethodRef(idx)
		if err != nil {
			return []Token{text(word)}, err
		}
		var nameTok Token
		if insnsOff != 0 {
			nameTok = address(int64(insnsOff), name)
		} else {
			nameTok = text(name)
		}
		toks := []Token{text(class), text(";->"), nameTok, text("(")}
		for _, p := range params {
			toks = append(toks, text(p))
		}
		toks = append(toks, text(")"), text(ret))
		return toks, nil
	case "string":
		s, err := pool.String(idx)
		if err != nil {
			return []Token{text(word)}, err
		}
		return []Token{text("\"" + escapeSmaliString(s) + "\"")}, nil
	case "type":
		t, err := pool.TypeName(idx)
		if err != nil {
			return []Token{text(word)}, err
		}
		return []Token{text(t)}, nil
	case "call_site", "method_handle", "proto":
		if logger != nil {
			logger.Warnf("resolution of %s@%d is not implemented", kind, idx)
		}
		return []Token{text(word)}, nil
	default:
		if logger != nil {
			logger.Warnf("unrecognized pool kind %q", kind)
		}
		return []Token{text(word)}, nil
	}
}

func escapeSmaliString(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n", "\t", "\\t", "\r", "\\r")
	return r.Replace(s)
}

func registerName(n int64) string {
	return "v" + strconv.FormatInt(n, 10)
}

func warnf(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}

// disassemblePseudo renders the payload at address as a multi-line
// directive block (.packed-switch / .sparse-switch / .array-data),
// looking it up in the container's precomputed pseudo map rather than
// re-parsing it here. Per DESIGN.md's redesign of fill-array-data
// rendering, all three payloads render as a complete block rather than
// the single opaque marker token the host emits.
func disassemblePseudo(data []byte, address uint32, pseudos map[uint32]PseudoInstruction, logger Logger) ([]Token, int) {
	p, ok := pseudos[address]
	if !ok {
		warnf(logger, "no pseudo-instruction registered at %d", address)
		return nil, 2
	}
	switch {
	case p.PackedSwitch != nil:
		return renderPackedSwitch(p.PackedSwitch), p.TotalSize
	case p.SparseSwitch != nil:
		return renderSparseSwitch(p.SparseSwitch), p.TotalSize
	case p.FillArrayData != nil:
		return renderFillArrayData(p.FillArrayData), p.TotalSize
	default:
		warnf(logger, "pseudo-instruction at %d carries no payload", address)
		return nil, p.TotalSize
	}
}

func renderPackedSwitch(p *PackedSwitchPayload) []Token {
	toks := []Token{text(".packed-switch "), integer(int64(p.FirstKey), fmt.Sprintf("0x%x", p.FirstKey))}
	for i, target := range p.Targets {
		toks = append(toks, text("\n"), address(int64(target), fmt.Sprintf("0x%x", target)))
		_ = i
	}
	toks = append(toks, text("\n.end packed-switch"))
	return toks
}

func renderSparseSwitch(p *SparseSwitchPayload) []Token {
	toks := []Token{text(".sparse-switch")}
	for i := range p.Keys {
		toks = append(toks,
			text("\n"), integer(int64(p.Keys[i]), fmt.Sprintf("0x%x", p.Keys[i])),
			text(" -> "), address(int64(p.Targets[i]), fmt.Sprintf("0x%x", p.Targets[i])))
	}
	toks = append(toks, text("\n.end sparse-switch"))
	return toks
}

func renderFillArrayData(p *FillArrayDataPayload) []Token {
	toks := []Token{
		text(".array-data "),
		integer(int64(p.ElementWidth), fmt.Sprintf("%d", p.ElementWidth)),
	}
	stride := int(p.ElementWidth)
	if stride == 0 {
		stride = 1
	}
	for off := 0; off+stride <= len(p.Data); off += stride {
		var v uint64
		for k := stride - 1; k >= 0; k-- {
			v = (v << 8) | uint64(p.Data[off+k])
		}
		toks = append(toks, text("\n"), integer(int64(v), fmt.Sprintf("0x%x", v)))
	}
	toks = append(toks, text("\n.end array-data"))
	return toks
}
