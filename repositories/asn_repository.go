package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wms-app/models"

	"gorm.io/gorm"
)

type AsnRepository struct {
	db *gorm.DB
}

func NewAsnRepository(db *gorm.DB) *AsnRepository {
	return &AsnRepository{db: db}
}

// GenerateAsnNumber builds ASyymmddnnnn, resetting the sequence per day.
func (r *AsnRepository) GenerateAsnNumber() (string, error) {
	var lastAsn models.AsnHeader

	if err := r.db.Unscoped().Last(&lastAsn).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	currentDate := time.Now().Format("060102")

	var asnNo string
	if lastAsn.AsnNo != "" && len(lastAsn.AsnNo) >= 12 {
		lastDatePart := lastAsn.AsnNo[2:8]
		lastSequenceStr := lastAsn.AsnNo[len(lastAsn.AsnNo)-4:]

		if currentDate != lastDatePart {
			asnNo = fmt.Sprintf("AS%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			asnNo = fmt.Sprintf("AS%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		asnNo = fmt.Sprintf("AS%s%04d", currentDate, 1)
	}

	return asnNo, nil
}
