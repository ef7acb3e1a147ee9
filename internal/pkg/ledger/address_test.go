package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressDeterministic(t *testing.T) {
	first := DeriveCustodyAddress("0xcreator", "my-room")
	second := DeriveCustodyAddress("0xcreator", "my-room")
	assert.Equal(t, first, second)
}

func TestRoomAndCustodyAddressesDiffer(t *testing.T) {
	room := DeriveRoomAddress("0xcreator", "my-room")
	custody := DeriveCustodyAddress("0xcreator", "my-room")
	assert.NotEqual(t, room, custody)
}

func TestDistinctPairsDeriveDistinctAddresses(t *testing.T) {
	pairs := [][2]string{
		{"0xcreator", "room-a"},
		{"0xcreator", "room-b"},
		{"0xother", "room-a"},
		// Shifted boundaries must not collide.
		{"0xcreatorr", "oom-a"},
		{"0xcreato", "rroom-a"},
	}

	seen := map[string][2]string{}
	for _, pair := range pairs {
		address := DeriveCustodyAddress(pair[0], pair[1])
		previous, collision := seen[address]
		require.False(t, collision, "pairs %v and %v derived the same address", previous, pair)
		seen[address] = pair
	}
}

func TestCustodyAuthorityMatchesDerivedAddress(t *testing.T) {
	authority := CustodyAuthority("0xcreator", "my-room")
	assert.Equal(t, DeriveCustodyAddress("0xcreator", "my-room"), authority.Address())
}

func TestNewAccountAddressUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		address := NewAccountAddress()
		require.False(t, seen[address])
		seen[address] = true
	}
}
