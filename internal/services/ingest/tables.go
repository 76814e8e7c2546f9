package ingest

// Static lookup tables used by the coercers and classification heuristics.
// They are immutable: callers receive them as explicit arguments so a caller
// can substitute a localized or extended table without touching parse logic.

// monthNames are the three-letter prefixes used for month-label matching.
var monthNames = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// AliasTable maps spelled-out instrument names to their exchange symbols.
type AliasTable map[string]string

// DefaultAliases covers the spelled-out coin names seen in user sheets.
var DefaultAliases = AliasTable{
	"BITCOIN":  "BTC",
	"ETHEREUM": "ETH",
	"LITECOIN": "LTC",
	"DOGECOIN": "DOGE",
	"SOLANA":   "SOL",
	"CARDANO":  "ADA",
	"RIPPLE":   "XRP",
	"POLKADOT": "DOT",
	"XBT":      "BTC",
}

// UnknownTicker is the sentinel for a symbol that normalizes to nothing.
const UnknownTicker = "UNKNOWN"

// assetKeywords maps asset-category tags to the name keywords that imply them.
// Checked in a fixed order (see inferAssetCategory) so ties break the same way
// on every parse.
var assetKeywords = []struct {
	category string
	words    []string
}{
	{"retirement", []string{"tfsa", "rrsp", "resp", "401k", "roth", "ira", "pension", "retirement"}},
	{"crypto", []string{"crypto", "bitcoin", "btc", "ethereum", "eth", "coin", "wallet"}},
	{"real_estate", []string{"condo", "house", "home", "apartment", "property", "real estate", "land"}},
	{"vehicle", []string{"car", "vehicle", "truck", "motorcycle", "boat"}},
	{"cash", []string{"cash", "chequing", "checking", "savings", "hysa", "emergency"}},
}

// creditKeywords flag an account as credit-type when they appear in its
// combined type/brand/name text.
var creditKeywords = []string{"credit", "visa", "mastercard", "amex", "american express"}

// reservedLabels are ledger row labels that are summary lines, not data.
var reservedLabels = []string{"total", "net income", "net", "summary", "grand total"}

// deniedNames are row labels rejected before use as map keys. The names come
// from untrusted cells; a label that shadows object-prototype internals would
// corrupt structures in a downstream JSON consumer.
var deniedNames = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}
