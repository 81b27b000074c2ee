package layout

import (
	"go.bytecodealliance.org/wit"
)

// Info is the memory layout of one type.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// Calculator lays out the field types native structs are built from:
// scalars, strings and nested records. Record layouts are cached per
// type definition.
type Calculator struct {
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Calculate returns the layout of t. Types a native struct cannot hold
// have a zero size.
func (c *Calculator) Calculate(t wit.Type) Info {
	if size := scalarSize(t); size > 0 {
		return Info{Size: size, Align: size}
	}
	switch typ := t.(type) {
	case wit.String:
		return Info{Size: 8, Align: 4} // char* plus length
	case *wit.TypeDef:
		r, ok := typ.Kind.(*wit.Record)
		if !ok {
			return Info{Align: 1}
		}
		if cached, ok := c.cache[typ]; ok {
			return cached
		}
		info := c.record(r)
		c.cache[typ] = info
		return info
	}
	return Info{Align: 1}
}

func scalarSize(t wit.Type) uint32 {
	switch t.(type) {
	case wit.Bool, wit.U8, wit.S8:
		return 1
	case wit.U16, wit.S16:
		return 2
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return 4
	case wit.U64, wit.S64, wit.F64:
		return 8
	}
	return 0
}

// record places fields in declaration order, each at its natural
// alignment, the way a C compiler lays out a struct.
func (c *Calculator) record(r *wit.Record) Info {
	info := Info{Align: 1, FieldOffs: make(map[string]uint32, len(r.Fields))}
	var off uint32
	for _, f := range r.Fields {
		fl := c.Calculate(f.Type)
		off = AlignTo(off, fl.Align)
		info.FieldOffs[f.Name] = off
		off += fl.Size
		info.Align = max(info.Align, fl.Align)
	}
	info.Size = AlignTo(off, info.Align)
	return info
}
