package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 15 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//openFDA upstream
	OpenFDABaseURL        = "https://api.fda.gov/drug/label.json"
	OpenFDARequestTimeout = 20 * time.Second
	SourceTagOpenFDA      = "openfda_label"
	SourceTagTrials       = "clinical_trials"

	//http client pooling
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//pipeline tuning - the snap/bonus constants are load bearing for ranking
	//order, do not re-derive them
	ChunkSize            = 1200
	ChunkOverlap         = 150
	BoundarySnapFraction = 0.70
	PhraseBonusFactor    = 2
	MinKeywordLength     = 2 //keywords must be strictly longer than this

	DefaultTopK     = 5
	MaxTopK         = 10
	DefaultFetchLim = 10
	MaxFetchLim     = 100

	SummaryMaxLength      = 1500
	SummaryPreviewChunks  = 3
	SummaryPreviewChars   = 200
	BundleChunkPreviewCap = 500

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DB we can use
	RedisResponseCache = 0

	//upstream payloads go stale fast enough that a short TTL is all we want
	ResponseCacheTTL = 15 * time.Minute

	//auth
	NoAuthBypass = true
	AuthToken    = ""
)

// SafetyBoostKeywords bias the ranking toward safety language. Labels for some
// products carry Spanish-language sections, so both vocabularies are listed.
var SafetyBoostKeywords = []string{
	"warning", "warnings", "contraindication", "contraindications",
	"adverse", "reactions", "boxed", "interaction", "interactions",
	"precaution", "precautions", "overdose",
	"advertencia", "advertencias", "contraindicaciones",
	"reacciones", "adversas", "precauciones", "sobredosis",
}

func GetFDAAPIKey() string {
	return os.Getenv("FDA_API_KEY")
}

func GetRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return RedisAddr
}

func GetAuthToken() string {
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		return token
	}
	return AuthToken
}
