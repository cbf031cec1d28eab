package hwio

import (
	"visynth/sim/log"
)

// Bank is a tiny address-indexed collection of registers. The host control
// interface addresses registers by their offset in the bank.
type Bank struct {
	Name string
	regs []*Reg8
}

func NewBank(name string, regs ...*Reg8) *Bank {
	return &Bank{Name: name, regs: regs}
}

func (b *Bank) Read8(addr uint16) uint8 {
	if int(addr) >= len(b.regs) {
		log.ModCtrl.ErrorZ("unmapped bank read").
			String("bank", b.Name).
			Hex16("addr", addr).
			End()
		return 0
	}
	return b.regs[addr].Read8(addr)
}

func (b *Bank) Write8(addr uint16, val uint8) {
	if int(addr) >= len(b.regs) {
		log.ModCtrl.ErrorZ("unmapped bank write").
			String("bank", b.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	b.regs[addr].Write8(addr, val)
}

// ByName returns the named register, or nil.
func (b *Bank) ByName(name string) *Reg8 {
	for _, reg := range b.regs {
		if reg.Name == name {
			return reg
		}
	}
	return nil
}
