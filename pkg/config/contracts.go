package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"powervoting/pkg/contracts"
)

type contractKey struct {
	kind    contracts.Kind
	network contracts.NetworkID
}

// contractsDocument is the on-disk shape of CONTRACTS_FILE:
//
//	contracts:
//	  powerVoting:
//	    314: "0x..."
type contractsDocument struct {
	Contracts map[string]map[int64]string `yaml:"contracts"`
}

// parseContracts decodes a contracts document. Unknown kinds and unknown top-level
// fields are rejected.
func parseContracts(data []byte) (map[contractKey]string, error) {
	var doc contractsDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}

	out := make(map[contractKey]string)
	for rawKind, byNetwork := range doc.Contracts {
		kind, ok := contracts.ParseKind(rawKind)
		if !ok {
			return nil, fmt.Errorf("unknown contract kind %q", rawKind)
		}
		for network, address := range byNetwork {
			out[contractKey{kind: kind, network: contracts.NetworkID(network)}] = strings.TrimSpace(address)
		}
	}
	return out, nil
}

func readContractsFile(path string) (map[contractKey]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contracts file: %w", err)
	}
	out, err := parseContracts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func contractEnvOverrides() map[contractKey]string {
	out := make(map[contractKey]string)
	for _, kind := range contracts.Kinds() {
		for _, network := range contracts.Networks() {
			if address := strings.TrimSpace(os.Getenv(ContractEnvVar(kind, network))); address != "" {
				out[contractKey{kind: kind, network: network.ID}] = address
			}
		}
	}
	return out
}

// ContractEnvVar names the override for one address, e.g.
// POWER_VOTING_FIP_CALIBRATION_CONTRACT_ADDRESS.
func ContractEnvVar(kind contracts.Kind, network contracts.Network) string {
	return screamingSnake(string(kind)) + "_" + strings.ToUpper(network.Name) + EnvContractAddressSuffix
}

func screamingSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func toEntries(addresses map[contractKey]string) []contracts.Entry {
	entries := make([]contracts.Entry, 0, len(addresses))
	for key, address := range addresses {
		entries = append(entries, contracts.Entry{Kind: key.kind, Network: key.network, Address: address})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Network < entries[j].Network
	})
	return entries
}
