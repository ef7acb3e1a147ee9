package ledger

// Authority authorizes outgoing transfers from one room's custody
// account. It can only be built from the room's derivation inputs, never
// from a raw address, so holding one is equivalent to holding the room's
// derivation proof.
type Authority struct {
	custodyAddress string
}

func CustodyAuthority(creator string, roomSeed string) Authority {
	return Authority{custodyAddress: DeriveCustodyAddress(creator, roomSeed)}
}

func (a Authority) Address() string {
	return a.custodyAddress
}
