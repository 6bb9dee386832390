package crypto

import "runtime"

// Zeroize overwrites b with zeros to clear sensitive material from memory.
// Derived keys and passwords must not outlive the call that produced them;
// every exit path that owns such a buffer ends with a Zeroize.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
