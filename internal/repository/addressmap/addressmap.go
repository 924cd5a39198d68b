package addressmap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Map translates logical product ids to physical actuator addresses,
// with a product-name fallback for catalog items that carry no id.
type Map struct {
	byID           map[int]int
	byName         map[string]int
	defaultAddress int
}

type mapFile struct {
	ByID    map[string]int `json:"by_id"`
	ByName  map[string]int `json:"by_name"`
	Default *int           `json:"default,omitempty"`
}

// Default returns the address table of the deployed machine.
func Default(defaultAddress int) *Map {
	return &Map{
		byID: map[int]int{
			1: 15,
			2: 18,
			3: 19,
			4: 21,
			5: 22,
			6: 23,
			7: 13,
			8: 12,
		},
		byName: map[string]int{
			"brahma":         15,
			"skol":           18,
			"coca_cola":      19,
			"coca_cola_zero": 21,
			"sprite":         22,
			"energetico":     23,
			"agua":           13,
			"original":       12,
		},
		defaultAddress: defaultAddress,
	}
}

// Load reads the address table from a JSON file.
func Load(path string, defaultAddress int) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read address map: %w", err)
	}

	var f mapFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse address map: %w", err)
	}

	m := &Map{
		byID:           make(map[int]int, len(f.ByID)),
		byName:         f.ByName,
		defaultAddress: defaultAddress,
	}
	if m.byName == nil {
		m.byName = make(map[string]int)
	}
	if f.Default != nil {
		m.defaultAddress = *f.Default
	}

	for k, v := range f.ByID {
		var id int
		if _, err := fmt.Sscanf(k, "%d", &id); err != nil {
			return nil, fmt.Errorf("parse address map: bad product id %q", k)
		}
		m.byID[id] = v
	}

	return m, nil
}

// Resolve maps a product to its actuator address: id first, name
// fallback, default address last. It never drops an item.
func (m *Map) Resolve(productRef int, name string) int {
	if addr, ok := m.byID[productRef]; ok {
		return addr
	}
	if addr, ok := m.byName[name]; ok {
		return addr
	}

	return m.defaultAddress
}
