// This file is part of Regwatch.
//
// Regwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regwatch.  If not, see <https://www.gnu.org/licenses/>.

package runner

import (
	"math"

	"github.com/regwatch/regwatch/registers"
)

func gpr(reg int, v uint32) Write {
	return Write{File: registers.General, Register: reg, Value: v}
}

func fpr(reg int, f float32) Write {
	return Write{File: registers.Float, Register: reg, Value: math.Float32bits(f)}
}

func dpr(reg int, d float64) Write {
	return Write{File: registers.Float, Register: reg, Double: true, Wide: math.Float64bits(d)}
}

// list of registers used by the demonstration program
const (
	t0 = 8
	t1 = 9
	t2 = 10
	s0 = 16
	v0 = 2
	a0 = 4
)

// Demo returns a program that calculates the first few fibonacci numbers,
// keeping a running total as a double and the most recent ratio of
// successive values as a float. A call and return is made on every
// iteration so that the return address register changes.
func Demo(iterations int) *Program {
	p := &Program{Name: "fibonacci"}

	add := func(text string, w ...Write) {
		p.Instructions = append(p.Instructions, Instruction{Text: text, Writes: w})
	}

	const base = 0x00400000

	add("li $t0, 0", gpr(t0, 0))
	add("li $t1, 1", gpr(t1, 1))
	add("li $s0, 0", gpr(s0, 0))
	add("mtc1.d $zero, $f2", dpr(2, 0))

	var a, b uint32 = 0, 1
	var total float64

	for i := range iterations {
		c := a + b
		total += float64(c)

		pc := uint32(base + len(p.Instructions)*4)

		add("addu $t2, $t0, $t1", gpr(t2, c))
		add("move $t0, $t1", gpr(t0, b))
		add("move $t1, $t2", gpr(t1, c))
		add("move $a0, $t2", gpr(a0, c))
		add("jal accumulate", gpr(registers.ReturnAddr, pc+20))
		add("add.d $f2, $f2, $f4", dpr(2, total))
		if b != 0 {
			add("div.s $f0, $f6, $f8", fpr(0, float32(c)/float32(b)))
		}
		add("multu $t2, $t2",
			Write{File: registers.General, Register: registers.Hi, Value: uint32(uint64(c) * uint64(c) >> 32)},
			Write{File: registers.General, Register: registers.Lo, Value: uint32(uint64(c) * uint64(c))},
		)
		add("addiu $s0, $s0, 1", gpr(s0, uint32(i+1)))

		a, b = b, c
	}

	add("move $v0, $t2", gpr(v0, b))
	add("li $v0, 10")

	return p
}
