package gotchi

import "github.com/ethereum/go-ethereum/common"

// DiamondAddress is the Aavegotchi Diamond on Polygon mainnet, where the
// CollateralFacet is deployed.
var DiamondAddress = common.HexToAddress("0x86935F11C86623deC8a25696E1C19a8659CbF95d")
