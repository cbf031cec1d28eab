// Package control implements the host-side control path: the register bank
// through which a host sets the display mode and amplitude, plus the
// command-file and websocket drivers that write to it. The core samples the
// registers as plain levels once per tick; there is no handshake.
package control

import (
	"sync/atomic"

	"visynth/sim/log"
	"visynth/vid/hwio"
)

// Register bank offsets.
const (
	RegMode uint16 = 0x0
	RegAmp  uint16 = 0x1
)

// Block is the control register block. Writes may come from any goroutine
// (rpc, websocket, file watcher); the values cross into the simulation loop
// through atomics so the per-tick sampling never tears.
type Block struct {
	Bank *hwio.Bank

	mode atomic.Uint32
	amp  atomic.Uint32

	modeReg hwio.Reg8
	ampReg  hwio.Reg8
}

func NewBlock(mode, amp uint8) *Block {
	b := &Block{}
	b.modeReg = hwio.Reg8{
		Name:   "MODE",
		RoMask: 0xF8, // 3-bit selector
		WriteCb: func(old, val uint8) {
			b.mode.Store(uint32(val))
			log.ModCtrl.DebugZ("mode register write").
				Hex8("old", old).
				Hex8("val", val).
				End()
		},
	}
	b.ampReg = hwio.Reg8{
		Name: "AMP",
		WriteCb: func(old, val uint8) {
			b.amp.Store(uint32(val))
		},
	}
	b.Bank = hwio.NewBank("ctrl", &b.modeReg, &b.ampReg)

	b.Bank.Write8(RegMode, mode)
	b.Bank.Write8(RegAmp, amp)
	return b
}

// Mode and Amp return the current register levels, safe from any goroutine.

func (b *Block) Mode() uint8 { return uint8(b.mode.Load()) }
func (b *Block) Amp() uint8  { return uint8(b.amp.Load()) }

func (b *Block) SetMode(v uint8) { b.Bank.Write8(RegMode, v) }
func (b *Block) SetAmp(v uint8)  { b.Bank.Write8(RegAmp, v) }
