// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/logger"
)

// Maximum number of banks in each region.
const (
	MaxPrgBanks = 128
	MaxChrBanks = 256
	MaxSavBanks = 4
)

// Base addresses of the cartridge regions in the CPU and PPU address spaces.
const (
	SavBase = 0x6000
	PrgBase = 0x8000
	ChrBase = 0x0000
	ChrTop  = 0x1fff
)

// IRQSignaller is implemented by the CPU. Mappers that generate interrupts
// do so through the cartridge.
type IRQSignaller interface {
	SignalIRQ()
}

// Cartridge owns the bank memory and the mapper of the loaded cartridge.
type Cartridge struct {
	irq IRQSignaller

	header Header
	mapper mapper.Mapper

	prg [MaxPrgBanks * mapper.PrgBankSize]uint8
	chr [MaxChrBanks * mapper.ChrBankSize]uint8
	sav [MaxSavBanks * mapper.SavBankSize]uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is empty until Load() is called.
func NewCartridge(irq IRQSignaller) *Cartridge {
	return &Cartridge{irq: irq}
}

func (cart *Cartridge) String() string {
	if cart.mapper == nil {
		return "no cartridge"
	}
	return fmt.Sprintf("%s: %s", cart.mapper.ID(), cart.header)
}

// Load the cartridge data in iNES format. On error the previously loaded
// cartridge is left unchanged.
func (cart *Cartridge) Load(data []byte) (Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, err
	}

	clear(cart.prg[:])
	clear(cart.chr[:])
	clear(cart.sav[:])

	data = data[HeaderSize:]
	if h.HasTrainer {
		logger.Log(logger.Allow, "cartridge", "trainer is not supported and will be ignored")
		data = data[TrainerSize:]
	}

	numPrg := h.PrgSize / mapper.PrgBankSize
	if numPrg > MaxPrgBanks {
		logger.Logf(logger.Allow, "cartridge", "PRG too large (%d banks). truncating to %d banks", numPrg, MaxPrgBanks)
		numPrg = MaxPrgBanks
	}
	numChr := h.ChrSize / mapper.ChrBankSize
	if numChr > MaxChrBanks {
		logger.Logf(logger.Allow, "cartridge", "CHR too large (%d banks). truncating to %d banks", numChr, MaxChrBanks)
		numChr = MaxChrBanks
	}
	numSav := min(h.NumPrgRAMBanks, MaxSavBanks)

	copy(cart.prg[:], data[:numPrg*mapper.PrgBankSize])
	data = data[h.PrgSize:]
	copy(cart.chr[:], data[:numChr*mapper.ChrBankSize])

	create, ok := mappers[h.MapperID]
	if !ok {
		logger.Logf(logger.Allow, "cartridge", "mapper %d is not supported. using mapper 0", h.MapperID)
		create = mappers[0]
		h.Fallback = true
	}

	cart.header = h
	cart.mapper = create()
	cart.mapper.Initialise(numPrg, numChr, numSav)

	logger.Logf(logger.Allow, "cartridge", "%s", cart)

	return h, nil
}

// IsLoaded returns true if a cartridge has been loaded.
func (cart *Cartridge) IsLoaded() bool {
	return cart.mapper != nil
}

// Header returns the header of the loaded cartridge.
func (cart *Cartridge) Header() Header {
	return cart.header
}

// MapperID returns the name of the mapper. Returns the empty string if no
// cartridge is loaded.
func (cart *Cartridge) MapperID() string {
	if cart.mapper == nil {
		return ""
	}
	return cart.mapper.ID()
}

// Mirroring returns the current nametable mirroring. The mapper's value takes
// precedence over the header's.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	if cart.mapper == nil {
		return mapper.Horizontal
	}
	if m := cart.mapper.Mirroring(); m != mapper.Undefined {
		return m
	}
	return cart.header.Mirroring
}

// HasSaveRAM returns true if the cartridge has battery backed save RAM.
func (cart *Cartridge) HasSaveRAM() bool {
	return cart.mapper != nil && cart.header.HasSRAM
}

// ReadCPU returns the value at the address in the CPU address space.
func (cart *Cartridge) ReadCPU(address uint16) uint8 {
	if cart.mapper == nil {
		return 0
	}

	switch {
	case address >= PrgBase:
		return cart.prg[cart.prgOffset(address)]
	case address >= SavBase:
		return cart.sav[cart.savOffset(address)]
	}

	return 0
}

// WriteCPU writes the value to the address in the CPU address space. The
// mapper sees every write, including writes to memory that can't be changed.
func (cart *Cartridge) WriteCPU(address uint16, data uint8) {
	if cart.mapper == nil {
		return
	}

	cart.mapper.OnCPUWrite(address, data)

	switch {
	case address >= PrgBase:
		if cart.mapper.CanWritePrg() {
			cart.prg[cart.prgOffset(address)] = data
		}
	case address >= SavBase:
		if cart.mapper.CanWriteSav() {
			cart.sav[cart.savOffset(address)] = data
		}
	}
}

// ReadPPU returns the value at the address in the PPU address space. Only
// the pattern tables are provided by the cartridge.
func (cart *Cartridge) ReadPPU(address uint16) uint8 {
	if cart.mapper == nil || address > ChrTop {
		return 0
	}
	return cart.chr[cart.chrOffset(address)]
}

// WritePPU writes to the pattern tables if they are writable.
func (cart *Cartridge) WritePPU(address uint16, data uint8) {
	if cart.mapper == nil || address > ChrTop {
		return
	}
	if cart.mapper.CanWriteChr() {
		cart.chr[cart.chrOffset(address)] = data
	}
}

func (cart *Cartridge) prgOffset(address uint16) int {
	slot := int(address)/mapper.PrgBankSize - PrgBase/mapper.PrgBankSize
	bank := cart.mapper.MappedPrgBank(slot)
	return bank*mapper.PrgBankSize + int(address&(mapper.PrgBankSize-1))
}

func (cart *Cartridge) chrOffset(address uint16) int {
	slot := int(address)/mapper.ChrBankSize - ChrBase/mapper.ChrBankSize
	bank := cart.mapper.MappedChrBank(slot)
	return bank*mapper.ChrBankSize + int(address&(mapper.ChrBankSize-1))
}

func (cart *Cartridge) savOffset(address uint16) int {
	slot := int(address)/mapper.SavBankSize - SavBase/mapper.SavBankSize
	bank := cart.mapper.MappedSavBank(slot)
	return bank*mapper.SavBankSize + int(address&(mapper.SavBankSize-1))
}

// PrgBankIndex16K returns the 16KB bank that is mapped to the address.
// Returns -1 if the address is not in PRG memory or no cartridge is loaded.
func (cart *Cartridge) PrgBankIndex16K(address uint16) int {
	if cart.mapper == nil || address < PrgBase {
		return -1
	}
	return cart.prgOffset(address) / 0x4000
}

// OnScanline should be called by the PPU once for every rendered scanline.
func (cart *Cartridge) OnScanline() {
	if cart.mapper == nil {
		return
	}
	cart.mapper.OnScanline()
	if cart.mapper.TestAndClearIRQ() && cart.irq != nil {
		cart.irq.SignalIRQ()
	}
}

// SaveRAM returns a copy of the save RAM. Returns nil if no cartridge is
// loaded.
func (cart *Cartridge) SaveRAM() []byte {
	if cart.mapper == nil {
		return nil
	}
	d := make([]byte, cart.mapper.SavMemorySize())
	copy(d, cart.sav[:])
	return d
}

// LoadSaveRAM copies the data into save RAM. Data beyond the size of the
// cartridge's save RAM is ignored.
func (cart *Cartridge) LoadSaveRAM(data []byte) {
	if cart.mapper == nil {
		return
	}
	copy(cart.sav[:cart.mapper.SavMemorySize()], data)
}

// Serialize implements the serializer.Serializable interface. Only memory
// that can change is included.
func (cart *Cartridge) Serialize(s *serializer.Serializer) {
	m := int(cart.header.Mirroring)
	s.IntRange(&m, int(mapper.Undefined), int(mapper.OneScreenUpper), "mirroring")
	cart.header.Mirroring = mapper.Mirroring(m)

	if cart.mapper == nil {
		return
	}

	if cart.mapper.CanWritePrg() {
		s.Buffer(cart.prg[:cart.mapper.PrgMemorySize()])
	}
	if cart.mapper.CanWriteChr() {
		s.Buffer(cart.chr[:cart.mapper.ChrMemorySize()])
	}
	if cart.mapper.SavMemorySize() > 0 {
		s.Buffer(cart.sav[:cart.mapper.SavMemorySize()])
	}

	s.Object(cart.mapper)
}
