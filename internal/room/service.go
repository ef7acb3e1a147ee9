package room

import (
	"time"

	"github.com/palapa-fun/rooms-backend/internal/pkg/ledger"
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"github.com/palapa-fun/rooms-backend/internal/pkg/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type roomService struct {
	db            *gorm.DB
	notifier      *eventNotifier
	fees          feeSchedule
	baseline      uint64
	serviceWallet string
}

// Every lifecycle operation below runs as one gorm transaction. The room
// row is read FOR UPDATE first, so preconditions are checked against the
// current persisted state and stay valid until commit; any error rolls
// the whole operation back, state and fund movements together.

func (rs *roomService) createRoom(request CreateRoomRequest, userEmail string) (*model.Room, *reject.ProblemWithTrace) {
	var created *model.Room
	err := rs.db.Transaction(func(tx *gorm.DB) error {
		creator, err := callerAddress(tx, userEmail)
		if err != nil {
			return err
		}

		if err := validateCreate(request.RoomSeed, request.MaxPlayers); err != nil {
			return err
		}

		roomAddress := ledger.DeriveRoomAddress(creator, request.RoomSeed)
		var existing int64
		f := tx.Raw("SELECT COUNT(*) FROM room WHERE address = ?", roomAddress).Scan(&existing)
		if f.Error != nil {
			return f.Error
		}
		if existing > 0 {
			return errRoomExists
		}

		custodyAddress := ledger.DeriveCustodyAddress(creator, request.RoomSeed)
		if err := ledger.CreateAccount(tx, custodyAddress, true); err != nil {
			return err
		}
		if rs.baseline > 0 {
			err := ledger.Transfer(tx, creator, custodyAddress, rs.baseline, model.TransferBaselineFund, &roomAddress)
			if err != nil {
				return err
			}
		}

		created = &model.Room{
			Address:           roomAddress,
			CustodyAddress:    custodyAddress,
			Creator:           creator,
			RoomSeed:          request.RoomSeed,
			Status:            model.RoomOpenForJoining,
			MaxPlayers:        request.MaxPlayers,
			EntryFee:          request.EntryFee,
			CreationTimestamp: time.Now().UTC().Unix(),
		}
		f = tx.Table(model.Room{}.TableName()).Create(created)
		if f.Error != nil {
			log.Warn().Msg("error persisting room to database")
			return f.Error
		}
		return nil
	})

	if err != nil {
		return nil, rejectFor(err)
	}

	rs.notifier.notify(eventRoomCreated, created.Address, created.CreationTimestamp, nil, nil)
	return created, nil
}

func (rs *roomService) joinRoom(roomAddress string, userEmail string) (*model.Room, *reject.ProblemWithTrace) {
	var joined *model.Room
	var started bool
	var player string
	err := rs.db.Transaction(func(tx *gorm.DB) error {
		var err error
		player, err = callerAddress(tx, userEmail)
		if err != nil {
			return err
		}

		room, roster, err := lockRoom(tx, roomAddress)
		if err != nil {
			return err
		}

		if err := canJoin(room, roster, player); err != nil {
			return err
		}

		if room.EntryFee > 0 {
			err := ledger.Transfer(tx, player, room.CustodyAddress, room.EntryFee, model.TransferEntryFee, &room.Address)
			if err != nil {
				return err
			}
		}

		slot := model.RoomPlayer{
			RoomId:   room.Id,
			Address:  player,
			Position: len(roster),
			JoinedAt: time.Now().UTC().Unix(),
		}
		f := tx.Table(model.RoomPlayer{}.TableName()).Create(&slot)
		if f.Error != nil {
			return f.Error
		}

		// Filling the last slot starts the room; there is no separate
		// start operation.
		if len(roster)+1 == int(room.MaxPlayers) {
			room.Status = model.RoomInProgress
			started = true
		}
		f = tx.Table(model.Room{}.TableName()).Save(room)
		if f.Error != nil {
			return f.Error
		}

		joined = room
		return nil
	})

	if err != nil {
		return nil, rejectFor(err)
	}

	now := time.Now().UTC().Unix()
	rs.notifier.notify(eventRoomJoined, joined.Address, now, &player, nil)
	if started {
		rs.notifier.notify(eventRoomStarted, joined.Address, now, nil, nil)
	}
	return joined, nil
}

func (rs *roomService) announceWinner(roomAddress string, request AnnounceWinnerRequest, userEmail string) (*model.Room, *reject.ProblemWithTrace) {
	var finished *model.Room
	err := rs.db.Transaction(func(tx *gorm.DB) error {
		caller, err := callerAddress(tx, userEmail)
		if err != nil {
			return err
		}

		room, roster, err := lockRoom(tx, roomAddress)
		if err != nil {
			return err
		}

		if err := canAnnounceWinner(room, roster, caller, request.Winner); err != nil {
			return err
		}

		endTimestamp := time.Now().UTC().Unix()
		winner := request.Winner
		room.Winner = &winner
		room.Status = model.RoomFinished
		room.EndTimestamp = &endTimestamp
		f := tx.Table(model.Room{}.TableName()).Save(room)
		if f.Error != nil {
			return f.Error
		}

		if err := rs.settle(tx, room, winner); err != nil {
			return err
		}

		finished = room
		return nil
	})

	if err != nil {
		return nil, rejectFor(err)
	}

	rs.notifier.notify(eventRoomFinished, finished.Address, *finished.EndTimestamp, nil, finished.Winner)
	return finished, nil
}

// settle drains the custody account into the three payout transfers.
// Postcondition: custody balance is exactly zero; anything else means a
// logic defect, so the transaction fails and nothing is committed.
func (rs *roomService) settle(tx *gorm.DB, room *model.Room, winner string) error {
	balance, err := ledger.Balance(tx, room.CustodyAddress)
	if err != nil {
		return err
	}

	plan, err := planSettlement(balance, rs.baseline, rs.fees)
	if err != nil {
		return err
	}

	var serviceWalletExists int64
	f := tx.Raw("SELECT COUNT(*) FROM ledger_account WHERE address = ?", rs.serviceWallet).Scan(&serviceWalletExists)
	if f.Error != nil {
		return f.Error
	}
	if plan.ServiceFee > 0 && serviceWalletExists == 0 {
		return errServiceWalletMissing
	}

	authority := ledger.CustodyAuthority(room.Creator, room.RoomSeed)
	if plan.CreatorFee > 0 {
		err := ledger.AuthorizedTransfer(tx, authority, room.Creator, plan.CreatorFee, model.TransferCreatorFee, &room.Address)
		if err != nil {
			return err
		}
	}
	if plan.ServiceFee > 0 {
		err := ledger.AuthorizedTransfer(tx, authority, rs.serviceWallet, plan.ServiceFee, model.TransferServiceFee, &room.Address)
		if err != nil {
			return err
		}
	}
	if plan.WinnerTotal > 0 {
		err := ledger.AuthorizedTransfer(tx, authority, winner, plan.WinnerTotal, model.TransferWinnerPayout, &room.Address)
		if err != nil {
			return err
		}
	}

	remaining, err := ledger.Balance(tx, room.CustodyAddress)
	if err != nil {
		return err
	}
	if remaining != 0 {
		log.Error().
			Uint64("remaining", remaining).
			Str("room", room.Address).
			Msg("custody account not drained after payout")
		return errCustodyNotDrained
	}
	return nil
}

func (rs *roomService) cancelRoom(roomAddress string, userEmail string) (*model.Room, *reject.ProblemWithTrace) {
	var cancelled *model.Room
	err := rs.db.Transaction(func(tx *gorm.DB) error {
		caller, err := callerAddress(tx, userEmail)
		if err != nil {
			return err
		}

		room, roster, err := lockRoom(tx, roomAddress)
		if err != nil {
			return err
		}

		if err := canCancel(room, len(roster), caller); err != nil {
			return err
		}

		endTimestamp := time.Now().UTC().Unix()
		room.Status = model.RoomCancelled
		room.EndTimestamp = &endTimestamp
		f := tx.Table(model.Room{}.TableName()).Save(room)
		if f.Error != nil {
			return f.Error
		}

		balance, err := ledger.Balance(tx, room.CustodyAddress)
		if err != nil {
			return err
		}
		if balance > 0 {
			authority := ledger.CustodyAuthority(room.Creator, room.RoomSeed)
			err := ledger.AuthorizedTransfer(tx, authority, room.Creator, balance, model.TransferRefund, &room.Address)
			if err != nil {
				return err
			}

			remaining, err := ledger.Balance(tx, room.CustodyAddress)
			if err != nil {
				return err
			}
			if remaining != 0 {
				return errCustodyNotDrained
			}
		}

		cancelled = room
		return nil
	})

	if err != nil {
		return nil, rejectFor(err)
	}

	rs.notifier.notify(eventRoomCancelled, cancelled.Address, *cancelled.EndTimestamp, nil, nil)
	return cancelled, nil
}

func (rs *roomService) getRoom(roomAddress string) (*RoomResponse, *reject.ProblemWithTrace) {
	var room model.Room
	result := rs.db.
		Model(&model.Room{}).
		Where("address = ?", roomAddress).
		First(&room)
	if result.Error != nil {
		return nil, rejectFor(result.Error)
	}

	roster, err := rosterFor(rs.db, room.Id)
	if err != nil {
		return nil, rejectFor(err)
	}

	return &RoomResponse{Room: room, Players: roster}, nil
}

func (rs *roomService) getRooms(page utils.PageRequest) ([]RoomResponse, *int64, *reject.ProblemWithTrace) {
	rooms := []model.Room{}
	roomCount := int64(0)

	err := rs.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Table("room").Count(&roomCount)
		if res.Error != nil {
			return res.Error
		}

		res = tx.Table("room").
			Where("status IN ('OPEN_FOR_JOINING', 'IN_PROGRESS')").
			Order("creation_timestamp DESC").
			Limit(page.Size).
			Offset(page.Offset).
			Scan(&rooms)
		return res.Error
	})
	if err != nil {
		return nil, nil, rejectFor(err)
	}

	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roster, rosterErr := rosterFor(rs.db, room.Id)
		if rosterErr != nil {
			return nil, nil, rejectFor(rosterErr)
		}
		responses = append(responses, RoomResponse{Room: room, Players: roster})
	}

	return responses, &roomCount, nil
}

func lockRoom(tx *gorm.DB, roomAddress string) (*model.Room, []string, error) {
	var room model.Room
	f := tx.Raw("SELECT * FROM room WHERE address = ? FOR UPDATE", roomAddress).First(&room)
	if f.Error != nil {
		return nil, nil, f.Error
	}

	roster, err := rosterFor(tx, room.Id)
	if err != nil {
		return nil, nil, err
	}
	return &room, roster, nil
}

func rosterFor(tx *gorm.DB, roomId uint64) ([]string, error) {
	roster := []string{}
	f := tx.Raw("SELECT address FROM room_player WHERE room_id = ? ORDER BY position", roomId).Scan(&roster)
	if f.Error != nil {
		return nil, f.Error
	}
	return roster, nil
}

func callerAddress(tx *gorm.DB, userEmail string) (string, error) {
	var address string
	f := tx.Raw("SELECT u.ledger_account_address FROM palapa_user u WHERE email = ?", userEmail).First(&address)
	if f.Error != nil {
		return "", f.Error
	}
	return address, nil
}
