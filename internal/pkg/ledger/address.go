package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/google/uuid"
)

const (
	roomSeedPrefix    = "room"
	custodySeedPrefix = "vault"
)

// DeriveRoomAddress returns the address of the room record for a
// (creator, roomSeed) pair. The same pair always derives the same
// address, and distinct pairs derive distinct addresses.
func DeriveRoomAddress(creator string, roomSeed string) string {
	return derive(roomSeedPrefix, creator, roomSeed)
}

// DeriveCustodyAddress returns the address of the custody account bound
// to a (creator, roomSeed) pair.
func DeriveCustodyAddress(creator string, roomSeed string) string {
	return derive(custodySeedPrefix, creator, roomSeed)
}

// NewAccountAddress allocates a fresh address for a user ledger account.
func NewAccountAddress() string {
	sum := sha256.Sum256([]byte(uuid.New().String()))
	return "0x" + hex.EncodeToString(sum[:20])
}

func derive(prefix string, creator string, seed string) string {
	h := sha256.New()
	// Length-prefix each component so ("ab","c") and ("a","bc")
	// cannot collide.
	for _, part := range []string{prefix, creator, seed} {
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write([]byte(part))
	}
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
