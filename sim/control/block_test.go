package control

import "testing"

func TestBlockInitialLevels(t *testing.T) {
	b := NewBlock(3, 200)
	if got := b.Mode(); got != 3 {
		t.Errorf("Mode() = %d, want 3", got)
	}
	if got := b.Amp(); got != 200 {
		t.Errorf("Amp() = %d, want 200", got)
	}
}

func TestBlockModeMask(t *testing.T) {
	b := NewBlock(0, 0)

	// Only the low 3 bits of the mode register are writable.
	b.SetMode(0xFF)
	if got := b.Mode(); got != 7 {
		t.Errorf("Mode() = %d, want 7", got)
	}

	b.SetAmp(0xFF)
	if got := b.Amp(); got != 0xFF {
		t.Errorf("Amp() = %d, want 255", got)
	}
}

func TestBlockBankAccess(t *testing.T) {
	b := NewBlock(2, 100)

	// The register bank and the atomic levels stay coherent.
	b.Bank.Write8(RegMode, 5)
	if got := b.Bank.Read8(RegMode); got != 5 {
		t.Errorf("bank mode read = %d, want 5", got)
	}
	if got := b.Mode(); got != 5 {
		t.Errorf("Mode() = %d, want 5", got)
	}

	b.Bank.Write8(RegAmp, 42)
	if got := b.Amp(); got != 42 {
		t.Errorf("Amp() = %d, want 42", got)
	}

	if b.Bank.ByName("MODE") == nil || b.Bank.ByName("AMP") == nil {
		t.Errorf("register names not mapped")
	}
}
