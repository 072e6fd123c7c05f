package contracts

import (
	"sort"
	"strconv"
)

type NetworkID int64

const (
	Mainnet     NetworkID = 314
	Calibration NetworkID = 314159
)

type Network struct {
	ID   NetworkID
	Name string
	// AddressPrefix starts actor addresses on this network ("f" or "t").
	AddressPrefix string
}

var networks = map[NetworkID]Network{
	Mainnet:     {ID: Mainnet, Name: "mainnet", AddressPrefix: "f"},
	Calibration: {ID: Calibration, Name: "calibration", AddressPrefix: "t"},
}

func LookupNetwork(id int64) (Network, bool) {
	n, ok := networks[NetworkID(id)]
	return n, ok
}

// Networks returns the known networks ordered by ID.
func Networks() []Network {
	out := make([]Network, 0, len(networks))
	for _, n := range networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActorAddress formats an ID address such as f01234 for the given network.
func ActorAddress(networkID int64, actorID uint64) (string, bool) {
	n, ok := LookupNetwork(networkID)
	if !ok {
		return "", false
	}
	return n.AddressPrefix + "0" + strconv.FormatUint(actorID, 10), true
}
