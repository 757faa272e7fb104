//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates AVX2 movemask / movemask-inverse kernels, assembly
// counterparts of internal/polyfill's avx2Mover (which is portable Go and
// does not call them). These are the irreducible floor that
// the bit-width-1 plane decomposes to: packing a single-bit plane is
// VPMOVMSKB collapsing one sign bit per byte lane into
// a 32-bit mask; unpacking broadcasts each mask bit back out to a whole
// byte lane (0x00 or 0xFF) via a per-bit AND-then-compare. They follow the
// hardware convention (a lane is set when its bit 7 is set; a set lane
// unpacks to 0xFF), whereas scalarMover in internal/polyfill/mover_scalar.go
// treats any nonzero lane as set and unpacks a set lane to 1.

func genMovemaskKernel() {
	TEXT("movemaskAVX2Asm", NOSPLIT, "func(vals *uint8, n int) uint32")
	Doc("movemaskAVX2Asm collapses the sign bit (bit 7) of each of the first")
	Doc("min(n, 32) bytes in vals into the low bits of the returned mask.")

	valsParam := Load(Param("vals"), GP64())
	valsBase := valsParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	full := "movemask_full"
	tail := "movemask_tail"
	done := "movemask_done"

	CMPQ(n, op.Imm(32))
	JB(op.LabelRef(tail))

	Label(full)
	v := YMM()
	VMOVDQU(op.Mem{Base: valsBase}, v)
	result := GP32()
	VPMOVMSKB(v, result)
	Store(result, ReturnIndex(0))
	RET()

	Label(tail)
	// n < 32: fall back to a byte-at-a-time scan of the same sign bit
	// VPMOVMSKB reads.
	acc := GP32()
	XORL(acc, acc)
	idx := GP64()
	XORQ(idx, idx)

	loop := "movemask_tail_loop"
	Label(loop)
	CMPQ(idx, n)
	JAE(op.LabelRef(done))

	b := GP32()
	MOVBLZX(op.Mem{Base: valsBase, Index: idx, Scale: 1}, b)
	SHRL(op.Imm(7), b)
	bit := GP32()
	MOVL(idx.As32(), bit)
	shiftedBit := GP32()
	MOVL(b, shiftedBit)
	SHLL(bit, shiftedBit)
	ORL(shiftedBit, acc)

	INCQ(idx)
	JMP(op.LabelRef(loop))

	Label(done)
	Store(acc, ReturnIndex(0))
	RET()
}

func genMovemaskInverseKernel() {
	TEXT("movemaskInverseAVX2Asm", NOSPLIT, "func(mask uint32, vals *uint8, n int)")
	Doc("movemaskInverseAVX2Asm expands the low min(n, 32) bits of mask into")
	Doc("a full byte per bit (0xFF if set, 0x00 otherwise) at vals.")

	maskParam := Load(Param("mask"), GP32())
	valsParam := Load(Param("vals"), GP64())
	valsBase := valsParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	loop := "movemask_inv_loop"
	done := "movemask_inv_done"
	clamped := "movemask_inv_clamped"

	// mask has 32 bits: clamp n to 32 so the loop expands min(n, 32) lanes.
	CMPQ(n, op.Imm(32))
	JBE(op.LabelRef(clamped))
	MOVQ(op.Imm(32), n)
	Label(clamped)

	idx := GP64()
	XORQ(idx, idx)

	Label(loop)
	CMPQ(idx, n)
	JAE(op.LabelRef(done))

	bit := GP32()
	MOVL(idx.As32(), bit)
	one := GP32()
	MOVL(op.Imm(1), one)
	SHLL(bit, one)
	ANDL(maskParam, one)

	byteVal := GP32()
	XORL(byteVal, byteVal)
	notZero := "movemask_inv_set"
	TESTL(one, one)
	JZ(op.LabelRef(notZero))
	MOVL(op.Imm(0xFF), byteVal)
	Label(notZero)

	MOVB(byteVal.As8(), op.Mem{Base: valsBase, Index: idx, Scale: 1})

	INCQ(idx)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}
