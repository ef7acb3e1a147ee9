package room

import (
	"errors"
	"net/http"

	"github.com/palapa-fun/rooms-backend/internal/pkg/ledger"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"gorm.io/gorm"
)

var (
	errInvalidMaxPlayers    = errors.New("max players must be greater than 1")
	errMaxPlayersLimit      = errors.New("max players exceeds the allowed limit")
	errInvalidRoomSeed      = errors.New("room seed is empty or too long")
	errRoomExists           = errors.New("room already exists for this creator and seed")
	errRoomNotJoinable      = errors.New("room is not open for joining")
	errRoomFull             = errors.New("room is already full")
	errPlayerAlreadyJoined  = errors.New("player has already joined the room")
	errRoomNotInProgress    = errors.New("room is not in progress")
	errWinnerNotMember      = errors.New("winner is not a player of this room")
	errUnauthorized         = errors.New("only the room creator can perform this action")
	errCannotCancelState    = errors.New("room cannot be cancelled in its current state")
	errCancelPlayersJoined  = errors.New("room cannot be cancelled after players joined")
	errCalculationOverflow  = errors.New("arithmetic overflow during fee or payout calculation")
	errCustodyNotDrained    = errors.New("custody account not empty after payout")
	errServiceWalletMissing = errors.New("service wallet account does not exist")
)

type problemSpec struct {
	title  string
	status int
	code   string
}

var problemByError = map[error]problemSpec{
	errInvalidMaxPlayers:        {"Invalid number of maximum players", http.StatusBadRequest, "error.room.invalid-max-players"},
	errMaxPlayersLimit:          {"Maximum players exceeds the limit", http.StatusBadRequest, "error.room.max-players-limit"},
	errInvalidRoomSeed:          {"Invalid room seed", http.StatusBadRequest, "error.room.invalid-seed"},
	errRoomExists:               {"Room already exists", http.StatusConflict, "error.room.already-exists"},
	errRoomNotJoinable:          {"Room is not open for joining", http.StatusConflict, "error.room.not-joinable"},
	errRoomFull:                 {"Room is already full", http.StatusConflict, "error.room.full"},
	errPlayerAlreadyJoined:      {"Player has already joined", http.StatusConflict, "error.room.player-already-joined"},
	errRoomNotInProgress:        {"Room is not in progress", http.StatusConflict, "error.room.not-in-progress"},
	errWinnerNotMember:          {"Winner is not a room player", http.StatusBadRequest, "error.room.winner-not-member"},
	errUnauthorized:             {"Only the room creator can do this", http.StatusForbidden, "error.room.unauthorized"},
	errCannotCancelState:        {"Room cannot be cancelled in its state", http.StatusConflict, "error.room.cannot-cancel-state"},
	errCancelPlayersJoined:      {"Room has joined players", http.StatusConflict, "error.room.cannot-cancel-players"},
	errCalculationOverflow:      {"Payout calculation overflow", http.StatusConflict, "error.ledger.overflow"},
	errCustodyNotDrained:        {"Custody account not drained", http.StatusInternalServerError, "error.ledger.custody-not-drained"},
	errServiceWalletMissing:     {"Service wallet is not provisioned", http.StatusInternalServerError, "error.ledger.service-wallet-missing"},
	ledger.ErrInsufficientFunds: {"Insufficient funds", http.StatusConflict, "error.ledger.insufficient-funds"},
	ledger.ErrBalanceOverflow:   {"Balance overflow", http.StatusConflict, "error.ledger.overflow"},
	ledger.ErrAccountNotFound:   {"Ledger account not found", http.StatusNotFound, "error.ledger.account-not-found"},
}

func rejectFor(err error) *reject.ProblemWithTrace {
	for sentinel, spec := range problemByError {
		if errors.Is(err, sentinel) {
			return &reject.ProblemWithTrace{
				Problem: reject.NewProblem().
					WithTitle(spec.title).
					WithStatus(spec.status).
					WithCode(spec.code).
					WithDetail(err.Error()).
					Build(),
				Cause: err,
			}
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &reject.ProblemWithTrace{Problem: reject.NotFoundProblem(), Cause: err}
	}
	return &reject.ProblemWithTrace{Problem: reject.UnexpectedProblem(err), Cause: err}
}
