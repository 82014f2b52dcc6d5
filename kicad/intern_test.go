package kicad

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntern_ValuePreserving(t *testing.T) {
	for _, key := range []string{"Reference", "Value", "ki_keywords", "MPN", ""} {
		assert.Equal(t, key, Intern(key))
	}
}

func TestIntern_SharedInstance(t *testing.T) {
	// A listed key built at runtime interns to the table's instance, so
	// repeated lookups return identical string headers.
	built := string([]byte("Reference"))
	a := Intern(built)
	b := Intern("Refe" + "rence")
	assert.Equal(t, "Reference", a)
	assert.Equal(t, a, b)

	// Unknown keys pass through untouched.
	custom := "JLCPCB_Part"
	assert.Equal(t, custom, Intern(custom))
}

func TestIntern_ConcurrentFirstUse(t *testing.T) {
	// The table initializes lazily; hammer the first use from many
	// goroutines so the race detector can observe the initialization.
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, key := range []string{"Value", "Datasheet", "unlisted"} {
				if got := Intern(key); got != key {
					t.Errorf("Intern(%q) = %q", key, got)
				}
			}
		}()
	}
	wg.Wait()
}
