package kicad

import "sync"

// internTable maps a fixed allow-list of recurring property keys to one
// shared instance per key. Initialized lazily and exactly once; read-only and
// safe for concurrent use thereafter.
var internTable = sync.OnceValue(func() map[string]string {
	keys := []string{
		"Value",
		"Reference",
		"Footprint",
		"Datasheet",
		"Description",
		"ki_keywords",
		"ki_description",
		"ki_fp_filters",
		"D",
		"in_bom",
		"on_board",
		"pin_numbers",
		"power",
		"extends",
	}
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return m
})

// Intern returns the shared instance of key when it is on the allow-list of
// known recurring keys, and key itself otherwise. Purely a performance
// device: the result always equals the input, so interning has no observable
// effect on parsed values or serialized output.
func Intern(key string) string {
	if shared, ok := internTable()[key]; ok {
		return shared
	}
	return key
}
