package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// RuntimeUpgradeMetaData contains all meta data concerning the RuntimeUpgrade
// contract. The SDK never calls this contract directly; the ABI exists so
// upgrade calldata can be packed into proposal actions.
var RuntimeUpgradeMetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"upgradeSystemSmartContract","stateMutability":"nonpayable","inputs":[{"name":"systemContract","type":"address"},{"name":"newByteCode","type":"bytes"}],"outputs":[]}
	]`,
}
