package gotchi

import (
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NumericTraits is the number of trait slots an Aavegotchi has. Each
// collateral type carries one trait modifier per slot.
const NumericTraits = 6

// CollateralTypeInfo describes a collateral type as stored by the contract:
// the trait modifiers it applies and its visual and economic parameters.
// The field layout mirrors the on-chain tuple so ABI decoding maps directly
// onto it.
type CollateralTypeInfo struct {
	Modifiers      [NumericTraits]int16
	PrimaryColor   [3]byte
	SecondaryColor [3]byte
	CheekColor     [3]byte
	SvgId          uint8
	EyeShapeSvgId  uint8
	ConversionRate uint16
	Delisted       bool
}

// PrimaryColorHex returns the primary color as a #rrggbb string.
func (i CollateralTypeInfo) PrimaryColorHex() string {
	return "#" + hex.EncodeToString(i.PrimaryColor[:])
}

// SecondaryColorHex returns the secondary color as a #rrggbb string.
func (i CollateralTypeInfo) SecondaryColorHex() string {
	return "#" + hex.EncodeToString(i.SecondaryColor[:])
}

// CheekColorHex returns the cheek color as a #rrggbb string.
func (i CollateralTypeInfo) CheekColorHex() string {
	return "#" + hex.EncodeToString(i.CheekColor[:])
}

// Collateral pairs a collateral token address with its type info, as
// returned by collateralInfo and getCollateralInfo.
type Collateral struct {
	CollateralType     common.Address
	CollateralTypeInfo CollateralTypeInfo
}

// CollateralBalance is the result of collateralBalance: the collateral token
// backing an Aavegotchi, the escrow contract holding it, and the escrowed
// amount in the token's smallest unit.
type CollateralBalance struct {
	CollateralType common.Address
	Escrow         common.Address
	Balance        *big.Int
}
