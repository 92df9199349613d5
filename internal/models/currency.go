package models

// Currency is one of the custodied currency symbols.
type Currency string

// Supported currency codes
const (
	SOL  Currency = "SOL"  // primary chain currency
	USDC Currency = "USDC" // stable currency
	FLBY Currency = "FLBY" // platform token
)

// Currencies lists every supported currency in display order.
var Currencies = []Currency{SOL, USDC, FLBY}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case SOL, USDC, FLBY:
		return true
	}
	return false
}

// ProductType is the kind of product value can be attached to.
type ProductType string

const (
	ProductMessage  ProductType = "message"
	ProductToken    ProductType = "token"
	ProductNFT      ProductType = "nft"
	ProductCampaign ProductType = "campaign"
)

// Valid reports whether p is a supported product type.
func (p ProductType) Valid() bool {
	switch p {
	case ProductMessage, ProductToken, ProductNFT, ProductCampaign:
		return true
	}
	return false
}
