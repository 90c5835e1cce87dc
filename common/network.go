package common

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

var supportedNetworks = map[Network]struct{}{
	NetworkMainnet: {},
	NetworkTestnet: {},
}

// address human readable parts
var addressPrefixes = map[Network]string{
	NetworkMainnet: "ckb",
	NetworkTestnet: "ckt",
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// AddressPrefix returns the bech32 human readable part of addresses on the network.
func (n Network) AddressPrefix() string {
	return addressPrefixes[n]
}

func (n Network) IsMainnet() bool {
	return n == NetworkMainnet
}

func (n Network) String() string {
	return string(n)
}

// NetworkFromAddressPrefix returns the network of the given bech32 human readable part.
func NetworkFromAddressPrefix(hrp string) (Network, bool) {
	for network, prefix := range addressPrefixes {
		if prefix == hrp {
			return network, true
		}
	}
	return "", false
}
