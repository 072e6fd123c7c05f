package contracts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindPowerVoting    Kind = "powerVoting"
	KindOracle         Kind = "oracle"
	KindOraclePower    Kind = "oraclePower"
	KindPowerVotingFip Kind = "powerVotingFip"
)

var kinds = []Kind{KindPowerVoting, KindOracle, KindOraclePower, KindPowerVotingFip}

func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

type Entry struct {
	Kind    Kind      `yaml:"kind" validate:"required,oneof=powerVoting oracle oraclePower powerVotingFip"`
	Network NetworkID `yaml:"network" validate:"required,gt=0"`
	Address string    `yaml:"address" validate:"required,eth_addr"`
}

var ErrDuplicateEntry = errors.New("duplicate contract address entry")

// AddressBook maps contract kind and network to a deployed address.
type AddressBook struct {
	table map[Kind]map[NetworkID]string
}

var validate = validator.New()

// NewAddressBook validates every entry and builds the lookup table. A kind/network
// pair may appear only once.
func NewAddressBook(entries []Entry) (*AddressBook, error) {
	table := make(map[Kind]map[NetworkID]string, len(kinds))

	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("contract entry %d (%s on %d): %w", i, e.Kind, e.Network, err)
		}
		byNetwork, ok := table[e.Kind]
		if !ok {
			byNetwork = make(map[NetworkID]string)
			table[e.Kind] = byNetwork
		}
		if _, exists := byNetwork[e.Network]; exists {
			return nil, fmt.Errorf("%w: %s on network %d", ErrDuplicateEntry, e.Kind, e.Network)
		}
		byNetwork[e.Network] = e.Address
	}

	return &AddressBook{table: table}, nil
}

// Resolve returns the address of kind on networkID. ok is false for an unknown kind
// or when the contract is not deployed on that network.
func (b *AddressBook) Resolve(networkID int64, kind string) (address string, ok bool) {
	if b == nil {
		return "", false
	}
	address, ok = b.table[Kind(kind)][NetworkID(networkID)]
	return address, ok
}

// Entries returns the table ordered by kind, then network.
func (b *AddressBook) Entries() []Entry {
	if b == nil {
		return nil
	}
	var out []Entry
	for kind, byNetwork := range b.table {
		for network, address := range byNetwork {
			out = append(out, Entry{Kind: kind, Network: network, Address: address})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Network < out[j].Network
	})
	return out
}

func (b *AddressBook) Len() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, byNetwork := range b.table {
		n += len(byNetwork)
	}
	return n
}
