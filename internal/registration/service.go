package registration

import (
	"errors"

	"github.com/palapa-fun/rooms-backend/internal/pkg/ledger"
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"gorm.io/gorm"
)

type registrationService struct {
	db *gorm.DB
}

var errAlreadyRegistered = errors.New("user already registered")

func (s *registrationService) register(username string, email string, googleIdentityId string) (*model.User, *reject.ProblemWithTrace) {
	var user *model.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		f := tx.Raw("SELECT COUNT(*) FROM palapa_user WHERE email = ?", email).Scan(&existing)
		if f.Error != nil {
			return f.Error
		}
		if existing > 0 {
			return errAlreadyRegistered
		}

		address := ledger.NewAccountAddress()
		if err := ledger.CreateAccount(tx, address, false); err != nil {
			return err
		}

		user = &model.User{
			Email:                email,
			Username:             username,
			LedgerAccountAddress: address,
			GoogleIdentityId:     googleIdentityId,
		}
		return tx.Table(model.User{}.TableName()).Create(user).Error
	})

	if err != nil {
		if errors.Is(err, errAlreadyRegistered) {
			return nil, &reject.ProblemWithTrace{
				Problem: reject.NewProblem().
					WithTitle("User already registered").
					WithStatus(409).
					WithCode("error.registration.already-registered").
					Build(),
				Cause: err,
			}
		}
		return nil, &reject.ProblemWithTrace{Problem: reject.UnexpectedProblem(err), Cause: err}
	}

	return user, nil
}
