// Package layout computes size, alignment and field offsets for the wit
// types that describe native struct blocks.
//
// Records are laid out sequentially with padding for alignment, the same
// way a C compiler lays out the structs the bridge mirrors:
//
//	calc := layout.NewCalculator()
//	info := calc.Calculate(ioRecord)
//	// info.Size, info.Align, info.FieldOffs["DeltaTime"]
//
// Strings occupy a (pointer, length) pair; their bytes live elsewhere in
// the same memory.
package layout
