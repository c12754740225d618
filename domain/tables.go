package domain

// Table is a mongo collection name
type Table string

const (
	TableListings           Table = "listings"
	TableAllowedTokens      Table = "allowed_tokens"
	TableMarketplaceConfigs Table = "marketplace_configs"
	TableCollections        Table = "collections"
	TableCollectionRequests Table = "collection_requests"
	TableCounters           Table = "counters"
)
