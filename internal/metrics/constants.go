package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "itemforge_http_requests_total"
	MetricNameHTTPRequestDuration  = "itemforge_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "itemforge_http_requests_in_flight"
)

// Item persistence metric names
const (
	MetricNameItemsSaved            = "itemforge_items_saved_total"
	MetricNameItemsDiscarded        = "itemforge_items_discarded_total"
	MetricNameStatementsAppended    = "itemforge_statements_appended_total"
	MetricNameTransactionsCommitted = "itemforge_transactions_committed_total"
	MetricNameTransactionFailures   = "itemforge_transaction_failures_total"
	MetricNameStorageQueueDepth     = "itemforge_storage_queue_depth"
)

// Engine metric names
const (
	MetricNameIntegrityWarnings = "itemforge_integrity_warnings_total"
	MetricNameBonusCacheLookups = "itemforge_bonus_cache_lookups_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Item persistence metric help text
const (
	HelpTextItemsSaved            = "Items written by the persistence gateway, by save state"
	HelpTextItemsDiscarded        = "Items released after removal or before their first save"
	HelpTextStatementsAppended    = "SQL statements appended to storage transactions"
	HelpTextTransactionsCommitted = "Storage transactions committed by the storage worker"
	HelpTextTransactionFailures   = "Storage transactions that failed to commit"
	HelpTextStorageQueueDepth     = "Transactions waiting for the storage worker"
)

// Engine metric help text
const (
	HelpTextIntegrityWarnings = "Catalog data integrity problems encountered at runtime, by kind"
	HelpTextBonusCacheLookups = "Bonus composition cache lookups, by result"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelState  = "state"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Integrity warning kinds
const (
	IntegrityKindBonusList     = "bonus_list"
	IntegrityKindTemplate      = "template"
	IntegrityKindEnchantment   = "enchantment"
	IntegrityKindArtifactPower = "artifact_power"
	IntegrityKindOwnerMismatch = "owner_mismatch"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// HTTPLatencyBuckets ranges from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
