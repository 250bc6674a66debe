// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

import (
	"encoding/binary"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/saferwall/dex/log"
	"github.com/saferwall/dex/smali"
)

// MinDexSize is the smallest input Parse will accept: the fixed header
// alone, mirroring pe's TinyPESize guard.
const MinDexSize = HeaderSize

// A File represents an open, parsed Dex container.
type File struct {
	Header        *Header
	Info          FileInfo
	Warnings      []string
	ClassDefs     []ClassDef
	CallSites     []CallSite
	MethodHandles []MethodHandle

	data      []byte
	byteOrder binary.ByteOrder
	bigEndian bool

	strings       []string
	types         []Type
	protos        []*Proto
	fields        []Field
	methods       []Method
	methodHandles []MethodHandle

	typeLists     map[uint32]TypeList
	codeItems     map[uint32]*CodeItem
	classData     map[uint32]*ClassData
	encodedArrays map[uint32]EncodedArray
	pseudos       map[uint32]smali.PseudoInstruction

	f      *os.File
	mapped mmap.MMap
	opts   *Options
	logger *log.Helper
}

func newLogger(opts *Options) *log.Helper {
	if opts.Logger == nil {
		return log.NewHelper(log.NewFilter(log.NewStdLogger(os.Stderr), log.LevelWarn))
	}
	return log.NewHelper(opts.Logger)
}

// New instantiates a File by memory-mapping the Dex container at name,
// the same way pe.New opens a PE.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := &File{f: f, mapped: data, data: data}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	file.logger = newLogger(file.opts)
	return file, nil
}

// NewBytes instantiates a File from an in-memory Dex buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := &File{data: data}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	file.logger = newLogger(file.opts)
	return file, nil
}

// Close releases the memory mapping and underlying file handle, if any.
func (f *File) Close() error {
	if f.mapped != nil {
		_ = f.mapped.Unmap()
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

// warn records a non-fatal condition on Warnings and forwards it to the
// configured logger, the same bookkeeping pe.File does via Anomalies.
func (f *File) warn(msg string) {
	f.Warnings = append(f.Warnings, msg)
	f.logger.Warnf(msg)
}

// Parse drives the full container walk in the fixed dependency order
// spec §4.E requires: header, map list, then each pool in the order its
// cross-references demand. A failure in a required section is fatal;
// optional sections missing from the map list are a warning and the
// container is returned usable without them.
func (f *File) Parse() error {
	if len(f.data) < MinDexSize {
		return ErrTruncatedInput
	}

	if err := f.parseHeader(); err != nil {
		return err
	}

	mapItems, err := f.parseMapList()
	if err != nil {
		return err
	}
	byType := mapByType(mapItems)

	stringsItem, ok := byType[TypeStringIDItem]
	if !ok {
		return ErrMissingRequiredSection
	}
	f.strings, err = f.parseStringIDs(stringsItem)
	if err != nil {
		return err
	}

	typesItem, ok := byType[TypeTypeIDItem]
	if !ok {
		return ErrMissingRequiredSection
	}
	f.types, err = f.parseTypeIDs(typesItem, f.strings)
	if err != nil {
		return err
	}

	f.typeLists = map[uint32]TypeList{}
	if tlItem, ok := byType[TypeTypeList]; ok {
		f.typeLists, err = f.parseTypeLists(tlItem, f.types)
		if err != nil {
			return err
		}
		f.Info.HasTypeLists = true
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	protosItem, ok := byType[TypeProtoIDItem]
	if !ok {
		return ErrMissingRequiredSection
	}
	f.protos, err = f.parseProtoIDs(protosItem, f.strings, f.types, f.typeLists)
	if err != nil {
		return err
	}

	if fieldsItem, ok := byType[TypeFieldIDItem]; ok {
		f.fields, err = f.parseFieldIDs(fieldsItem, f.strings, f.types)
		if err != nil {
			return err
		}
		f.Info.HasFieldIDs = true
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	methodsItem, ok := byType[TypeMethodIDItem]
	if !ok {
		return ErrMissingRequiredSection
	}
	f.methods, err = f.parseMethodIDs(methodsItem, f.strings, f.types, f.protos)
	if err != nil {
		return err
	}

	f.codeItems = map[uint32]*CodeItem{}
	if codeItem, ok := byType[TypeCodeItem]; ok {
		f.codeItems, err = f.parseCodeItems(codeItem, f.types)
		if err != nil {
			return err
		}
		f.pseudos = make(map[uint32]smali.PseudoInstruction)
		for off, ci := range f.codeItems {
			for addr, p := range smali.ExtractPseudoInstructions(ci.Insns, off+codeItemHeaderSize, f.logger) {
				f.pseudos[addr] = p
			}
		}
	} else {
		return ErrMissingRequiredSection
	}

	f.classData = map[uint32]*ClassData{}
	if cdItem, ok := byType[TypeClassDataItem]; ok {
		f.classData, err = f.parseClassDataItems(cdItem, f.codeItems)
		if err != nil {
			return err
		}
		f.Info.HasClassData = true
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	f.encodedArrays = map[uint32]EncodedArray{}
	if eaItem, ok := byType[TypeEncodedArrayItem]; ok {
		f.encodedArrays, err = f.parseEncodedArrayItems(eaItem)
		if err != nil {
			return err
		}
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	classDefsItem, ok := byType[TypeClassDefItem]
	if !ok {
		return ErrMissingRequiredSection
	}
	f.ClassDefs, err = f.parseClassDefs(classDefsItem, f.types, f.strings, f.typeLists, f.classData, f.encodedArrays)
	if err != nil {
		return err
	}

	if csItem, ok := byType[TypeCallSiteIDItem]; ok {
		f.CallSites, err = f.parseCallSiteIDs(csItem)
		if err != nil {
			return err
		}
		f.Info.HasCallSites = true
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	if mhItem, ok := byType[TypeMethodHandleItem]; ok {
		f.MethodHandles, err = f.parseMethodHandles(mhItem)
		if err != nil {
			return err
		}
		f.methodHandles = f.MethodHandles
		f.Info.HasMethodHandles = true
	} else {
		f.warn(WarnMissingOptionalSection)
	}

	return nil
}

// Disassemble renders the instruction (or pseudo-instruction) at
// address within insns, delegating to the smali package with this File
// as its Pool. insns is normally a CodeItem's Insns slice from the
// instruction being decoded onward, and address that instruction's file
// offset (the CodeItem's InsnsOff plus its byte offset within Insns),
// which is how the pseudo-instruction map is keyed.
func (f *File) Disassemble(insns []byte, address uint32) ([]smali.Token, int) {
	return smali.Disassemble(f, insns, address, f.pseudos, f.logger)
}

// InstructionInfoAt computes the control-flow summary at address,
// without rendering tokens.
func (f *File) InstructionInfoAt(insns []byte, address uint32) smali.InstructionInfo {
	return smali.InstructionInfoAt(insns, address, f.pseudos)
}

// TypeName implements smali.Pool.
func (f *File) TypeName(idx uint32) (string, error) {
	t, err := f.Type(idx)
	return string(t), err
}

// FieldRef implements smali.Pool.
func (f *File) FieldRef(idx uint32) (class, name, typ string, err error) {
	fl, err := f.fieldAt(idx)
	if err != nil {
		return "", "", "", err
	}
	return string(fl.Class), fl.Name, string(fl.Type), nil
}

// MethodRef implements smali.Pool.
func (f *File) MethodRef(idx uint32) (class, name string, params []string, ret string, insnsOff uint32, err error) {
	m, err := f.methodAt(idx)
	if err != nil {
		return "", "", nil, "", 0, err
	}
	params = make([]string, len(m.Proto.Parameters))
	for i, p := range m.Proto.Parameters {
		params[i] = string(p)
	}
	return string(m.Class), m.Name, params, string(m.Proto.ReturnType), m.InsnsOff, nil
}
