package profile

import (
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"gorm.io/gorm"
)

type profileService struct {
	db *gorm.DB
}

func (s *profileService) findById(id uint64) (*Profile, *reject.ProblemWithTrace) {
	var profile Profile
	result := s.db.
		Table("palapa_user").
		Joins("INNER JOIN ledger_account ON palapa_user.ledger_account_address = ledger_account.address").
		Where("palapa_user.id = ?", id).
		Select(`
			palapa_user.id,
			palapa_user.email,
			palapa_user.username,
			ledger_account.address AS ledger_account_address,
			ledger_account.balance AS balance
		`).
		First(&profile)

	if result.Error != nil {
		return nil, &reject.ProblemWithTrace{
			Problem: reject.NotFoundProblem(),
			Cause:   result.Error,
		}
	}

	return &profile, nil
}

func (s *profileService) findByEmail(email string) (*Profile, *reject.ProblemWithTrace) {
	var profile Profile
	result := s.db.
		Table("palapa_user").
		Joins("INNER JOIN ledger_account ON palapa_user.ledger_account_address = ledger_account.address").
		Where("palapa_user.email = ?", email).
		Select(`
			palapa_user.id,
			palapa_user.email,
			palapa_user.username,
			ledger_account.address AS ledger_account_address,
			ledger_account.balance AS balance
		`).
		First(&profile)

	if result.Error != nil {
		return nil, &reject.ProblemWithTrace{
			Problem: reject.NotFoundProblem(),
			Cause:   result.Error,
		}
	}

	return &profile, nil
}
