package payverify

import (
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// defaultDecimals is the number of base-unit decimals of native coins and
// tokens unless a network says otherwise.
const defaultDecimals = 18

// Network is a chain the service accepts payments on.
type Network struct {
	Name         string `json:"name" yaml:"name"`
	ChainID      uint64 `json:"chainId" yaml:"chainId"`
	RPCURL       string `json:"-" yaml:"rpcUrl"`
	NativeSymbol string `json:"nativeSymbol" yaml:"nativeSymbol"`

	// NativeDecimals is the number of decimals of the native coin. Zero means 18.
	NativeDecimals int32 `json:"nativeDecimals" yaml:"nativeDecimals"`

	// TokenContract enables the token rail when set.
	TokenContract string `json:"tokenContract,omitempty" yaml:"tokenContract"`
	TokenSymbol   string `json:"tokenSymbol,omitempty" yaml:"tokenSymbol"`

	// TokenDecimals is the number of decimals of the token. Zero means 18.
	TokenDecimals int32 `json:"tokenDecimals,omitempty" yaml:"tokenDecimals"`

	// DefaultRail is used when a request does not name one. Empty means native.
	DefaultRail Rail `json:"defaultRail" yaml:"defaultRail"`
}

// Token returns the token contract address, if the network has one.
func (n Network) Token() (common.Address, bool) {
	if !common.IsHexAddress(n.TokenContract) {
		return common.Address{}, false
	}

	return common.HexToAddress(n.TokenContract), true
}

// Rails returns the rails the network can verify.
func (n Network) Rails() []Rail {
	rails := []Rail{RailNative}
	if _, ok := n.Token(); ok {
		rails = append(rails, RailToken)
	}

	return rails
}

func (n Network) nativeDecimals() int32 {
	if n.NativeDecimals == 0 {
		return defaultDecimals
	}

	return n.NativeDecimals
}

func (n Network) tokenDecimals() int32 {
	if n.TokenDecimals == 0 {
		return defaultDecimals
	}

	return n.TokenDecimals
}

func (n Network) defaultRail() Rail {
	if n.DefaultRail == "" {
		return RailNative
	}

	return n.DefaultRail
}

// RPCEnvVar returns the environment variable that overrides the RPC URL of
// the named network, e.g. "mantle-sepolia" -> "MANTLE_SEPOLIA_RPC_URL".
func RPCEnvVar(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_RPC_URL"
}

// DefaultNetworks returns the built-in networks.
func DefaultNetworks() []Network {
	return []Network{
		{
			Name:          "mantle",
			ChainID:       5000,
			RPCURL:        "https://rpc.mantle.xyz",
			NativeSymbol:  "MNT",
			TokenContract: "0x78c1b0c915c4faa5fffa6cabf0219da63d7f4cb8",
			TokenSymbol:   "WMNT",
			DefaultRail:   RailNative,
		},
		{
			Name:         "mantle-sepolia",
			ChainID:      5003,
			RPCURL:       "https://rpc.sepolia.mantle.xyz",
			NativeSymbol: "MNT",
			DefaultRail:  RailNative,
		},
	}
}

// Registry is the set of supported networks, keyed by name.
type Registry struct {
	networks map[string]Network
}

// NewRegistry builds a registry from networks. Later entries with the same
// name replace earlier ones.
func NewRegistry(networks ...Network) *Registry {
	r := &Registry{networks: make(map[string]Network, len(networks))}
	for _, n := range networks {
		r.networks[n.Name] = n
	}

	return r
}

// Lookup returns the network registered under name.
func (r *Registry) Lookup(name string) (Network, bool) {
	n, ok := r.networks[name]
	return n, ok
}

// Networks returns all registered networks sorted by name.
func (r *Registry) Networks() []Network {
	out := make([]Network, 0, len(r.networks))
	for _, n := range r.networks {
		out = append(out, n)
	}

	slices.SortFunc(out, func(a, b Network) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Merge adds networks to the registry. For a name that is already
// registered, every non-zero field of the new entry replaces the old value.
func (r *Registry) Merge(networks ...Network) {
	for _, n := range networks {
		current, ok := r.networks[n.Name]
		if !ok {
			r.networks[n.Name] = n
			continue
		}

		if n.ChainID != 0 {
			current.ChainID = n.ChainID
		}
		if n.RPCURL != "" {
			current.RPCURL = n.RPCURL
		}
		if n.NativeSymbol != "" {
			current.NativeSymbol = n.NativeSymbol
		}
		if n.NativeDecimals != 0 {
			current.NativeDecimals = n.NativeDecimals
		}
		if n.TokenContract != "" {
			current.TokenContract = n.TokenContract
		}
		if n.TokenSymbol != "" {
			current.TokenSymbol = n.TokenSymbol
		}
		if n.TokenDecimals != 0 {
			current.TokenDecimals = n.TokenDecimals
		}
		if n.DefaultRail != "" {
			current.DefaultRail = n.DefaultRail
		}

		r.networks[n.Name] = current
	}
}

// ApplyEnv overrides RPC URLs with the <NAME>_RPC_URL variables found by
// lookup (usually os.LookupEnv).
func (r *Registry) ApplyEnv(lookup func(string) (string, bool)) {
	for name, n := range r.networks {
		if url, ok := lookup(RPCEnvVar(name)); ok && url != "" {
			n.RPCURL = url
			r.networks[name] = n
		}
	}
}
