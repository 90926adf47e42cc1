package worldmap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegionKind enumerates the entity kinds a declared memory-map region may
// hold, per spec.md §6 ("item_slot", "enemy_group", "pointer",
// "hint_text", etc.).
type RegionKind string

const (
	EntityItemSlot       RegionKind = "item_slot"
	EntityEnemyGroup     RegionKind = "enemy_group"
	EntityPointer        RegionKind = "pointer"
	EntityHintText       RegionKind = "hint_text"
	EntityShopPrice      RegionKind = "shop_price"
	EntityCompassPointer RegionKind = "compass_pointer"
	EntityStartScreen    RegionKind = "start_screen"
	EntityTitleString    RegionKind = "title_string"
	EntityCanonicalHash  RegionKind = "canonical_hash"
)

// Region is one declared entry of the memory map: name, file offset,
// length, entity kind, and read/write policy (spec.md §6). Regions with a
// non-zero Stride/Count describe a repeated array of same-shaped entries
// (e.g. one byte per overworld-cave item slot); EntryOffset(index) resolves a
// specific entry's file offset.
type Region struct {
	Name     string     `yaml:"name"`
	Offset   uint32     `yaml:"fileOffset"`
	Length   uint32     `yaml:"length"`
	Stride   uint32     `yaml:"stride,omitempty"`
	Count    uint32     `yaml:"count,omitempty"`
	Kind     RegionKind `yaml:"kind"`
	Writable bool       `yaml:"writable"`
}

// EntryOffset returns the file offset of the index-th entry in a
// strided region. Panics if index >= Count (a programming error: callers
// must bounds-check against the domain they derived index from).
func (r Region) EntryOffset(index uint32) uint32 {
	if r.Count > 0 && index >= r.Count {
		panic(fmt.Sprintf("worldmap: region %q index %d out of bounds (count=%d)", r.Name, index, r.Count))
	}
	return r.Offset + index*r.Stride
}

// MemoryMap is the full declarative configuration consumed by DataTable.
// Regions not declared here are read-only by policy (spec.md §4.2
// "Boundary policy").
type MemoryMap struct {
	Regions []Region `yaml:"regions"`

	byName map[string]Region
}

// LoadMemoryMap reads and validates a YAML memory-map document from disk,
// in the same load/validate two-step teacher's pkg/dungeon.LoadConfig
// uses.
func LoadMemoryMap(path string) (*MemoryMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading memory map file: %w", err)
	}
	return LoadMemoryMapFromBytes(data)
}

// LoadMemoryMapFromBytes parses a YAML memory-map document from bytes.
func LoadMemoryMapFromBytes(data []byte) (*MemoryMap, error) {
	var mm MemoryMap
	if err := yaml.Unmarshal(data, &mm); err != nil {
		return nil, fmt.Errorf("parsing memory map YAML: %w", err)
	}
	if err := mm.validate(); err != nil {
		return nil, fmt.Errorf("validating memory map: %w", err)
	}
	mm.index()
	return &mm, nil
}

func (mm *MemoryMap) validate() error {
	if len(mm.Regions) == 0 {
		return errors.New("memory map declares no regions")
	}
	seen := make(map[string]bool, len(mm.Regions))
	for i, r := range mm.Regions {
		if r.Name == "" {
			return fmt.Errorf("region[%d]: name must not be empty", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("region[%d]: duplicate region name %q", i, r.Name)
		}
		seen[r.Name] = true
		if r.Offset+r.Length > BaseImageSize {
			return fmt.Errorf("region %q: extends past end of base image (offset=%d length=%d)", r.Name, r.Offset, r.Length)
		}
		if r.Offset < HeaderSize {
			return fmt.Errorf("region %q: overlaps the forbidden header region (offset=%d)", r.Name, r.Offset)
		}
	}
	return nil
}

func (mm *MemoryMap) index() {
	mm.byName = make(map[string]Region, len(mm.Regions))
	for _, r := range mm.Regions {
		mm.byName[r.Name] = r
	}
}

// Region looks up a declared region by name.
func (mm *MemoryMap) Region(name string) (Region, bool) {
	r, ok := mm.byName[name]
	return r, ok
}

// IsDeclaredWritable reports whether offset falls within some declared,
// writable region. Used by DataTable to enforce spec.md §4.2's
// "writes outside declared regions raise OutOfRegion."
func (mm *MemoryMap) IsDeclaredWritable(offset uint32) bool {
	for _, r := range mm.Regions {
		if !r.Writable {
			continue
		}
		if offset >= r.Offset && offset < r.Offset+r.Length {
			return true
		}
	}
	return false
}
