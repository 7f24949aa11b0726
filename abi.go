package gotchi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// FacetABI is the JSON ABI of the CollateralFacet methods and events this
// library binds. It is a subset of the full diamond ABI: only the collateral
// surface is included.
const FacetABI = `[
	{
		"name": "collateralBalance",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "_tokenId", "type": "uint256"}],
		"outputs": [
			{"name": "collateralType_", "type": "address"},
			{"name": "escrow_", "type": "address"},
			{"name": "balance_", "type": "uint256"}
		]
	},
	{
		"name": "collaterals",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "_hauntId", "type": "uint256"}],
		"outputs": [{"name": "collateralTypes_", "type": "address[]"}]
	},
	{
		"name": "getAllCollateralTypes",
		"type": "function",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "address[]"}]
	},
	{
		"name": "collateralInfo",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "_hauntId", "type": "uint256"},
			{"name": "_collateralId", "type": "uint256"}
		],
		"outputs": [
			{
				"name": "collateralInfo_",
				"type": "tuple",
				"components": [
					{"name": "collateralType", "type": "address"},
					{
						"name": "collateralTypeInfo",
						"type": "tuple",
						"components": [
							{"name": "modifiers", "type": "int16[6]"},
							{"name": "primaryColor", "type": "bytes3"},
							{"name": "secondaryColor", "type": "bytes3"},
							{"name": "cheekColor", "type": "bytes3"},
							{"name": "svgId", "type": "uint8"},
							{"name": "eyeShapeSvgId", "type": "uint8"},
							{"name": "conversionRate", "type": "uint16"},
							{"name": "delisted", "type": "bool"}
						]
					}
				]
			}
		]
	},
	{
		"name": "getCollateralInfo",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "_hauntId", "type": "uint256"}],
		"outputs": [
			{
				"name": "collateralInfo_",
				"type": "tuple[]",
				"components": [
					{"name": "collateralType", "type": "address"},
					{
						"name": "collateralTypeInfo",
						"type": "tuple",
						"components": [
							{"name": "modifiers", "type": "int16[6]"},
							{"name": "primaryColor", "type": "bytes3"},
							{"name": "secondaryColor", "type": "bytes3"},
							{"name": "cheekColor", "type": "bytes3"},
							{"name": "svgId", "type": "uint8"},
							{"name": "eyeShapeSvgId", "type": "uint8"},
							{"name": "conversionRate", "type": "uint16"},
							{"name": "delisted", "type": "bool"}
						]
					}
				]
			}
		]
	},
	{
		"name": "increaseStake",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_tokenId", "type": "uint256"},
			{"name": "_stakeAmount", "type": "uint256"}
		],
		"outputs": []
	},
	{
		"name": "decreaseStake",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_tokenId", "type": "uint256"},
			{"name": "_reduceAmount", "type": "uint256"}
		],
		"outputs": []
	},
	{
		"name": "decreaseAndDestroy",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_tokenId", "type": "uint256"},
			{"name": "_toId", "type": "uint256"}
		],
		"outputs": []
	},
	{
		"name": "setCollateralEyeShapeSvgId",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_collateralToken", "type": "address"},
			{"name": "_svgId", "type": "uint8"}
		],
		"outputs": []
	},
	{
		"name": "IncreaseStake",
		"type": "event",
		"inputs": [
			{"name": "_tokenId", "type": "uint256", "indexed": true},
			{"name": "_stakeAmount", "type": "uint256", "indexed": false}
		]
	},
	{
		"name": "DecreaseStake",
		"type": "event",
		"inputs": [
			{"name": "_tokenId", "type": "uint256", "indexed": true},
			{"name": "_reduceAmount", "type": "uint256", "indexed": false}
		]
	},
	{
		"name": "ExperienceTransfer",
		"type": "event",
		"inputs": [
			{"name": "_fromTokenId", "type": "uint256", "indexed": true},
			{"name": "_toTokenId", "type": "uint256", "indexed": true},
			{"name": "experience", "type": "uint256", "indexed": false}
		]
	}
]`

// facetABI is the parsed form of FacetABI, shared by all clients.
var facetABI = MustParseABI(FacetABI)

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
