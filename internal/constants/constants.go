package constants

// EnvAddr is read by the healthcheck binary; the server reads it through
// config.Env.
const EnvAddr = "ARENA_ADDR"

// HTTP headers and content types
const (
	HeaderContentDisposition = "Content-Disposition"
	ContentTypeText          = "text/plain; charset=utf-8"
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteUnits           = "/units"
	RouteMatches         = "/matches"
	RouteMatchesBatch    = "/matches/batch"
	RouteMatchesStream   = "/matches/stream"
	RouteMatchByID       = "/matches/:matchID"
	RouteMatchTranscript = "/matches/:matchID/transcript"
	RouteLeaderboard     = "/leaderboard"
	RouteVersion         = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidRoster          = "Invalid roster"
	ErrUnknownUnit            = "Unknown unit"
	ErrInvalidRuns            = "runs must be between 1 and 1000"
	ErrInvalidMatchID         = "Invalid match ID"
	ErrMatchNotFound          = "Match not found"
	ErrBattleNotSimulated     = "Battle could not be simulated"
	ErrFailedSaveMatch        = "Failed to save match"
	ErrFailedFetchUnits       = "Failed to fetch units"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrFailedEncodeMatch      = "Failed to encode match"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
)

// Logging field names
const (
	LogFieldMatchID = "match_id"
	LogFieldPlayer1 = "player1"
	LogFieldPlayer2 = "player2"
	LogFieldWinner  = "winner"
	LogFieldTurns   = "turns"
	LogFieldSeed    = "seed"
	LogFieldRuns    = "runs"
	LogFieldShared  = "shared"
	LogFieldName    = "name"
	LogFieldAddr    = "addr"
	LogFieldPath    = "path"
)
