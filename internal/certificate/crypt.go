package certificate

import (
	"fmt"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// cipherMacFromPassword derives a key from (password, salt, rounds) and
// returns a stream cipher and MAC context both keyed with it. The derived key
// exists only inside this function and is zeroized on every exit path. On
// success the caller owns both contexts; on failure nothing is returned.
func cipherMacFromPassword(
	suite interfaces.Suite, password, salt []byte, rounds uint32,
) (interfaces.StreamCipher, interfaces.Mac, error) {
	key, err := suite.DeriveKey(password, salt, rounds)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer crypto.Zeroize(key)

	mac, err := suite.NewMac(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mac: %w", err)
	}

	cipher, err := suite.NewStreamCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stream cipher: %w", err)
	}

	return cipher, mac, nil
}
