package models

import "time"

type UserGift struct {
	ID           int64      `db:"Id" json:"Id"`
	UserID       string     `db:"UserId" json:"UserId"`
	GiftID       int64      `db:"GiftId" json:"GiftId"`
	ClassLevel   int64      `db:"ClassLevel" json:"ClassLevel"`
	CreatedDate  time.Time  `db:"CreatedDate" json:"CreatedDate"`
	ModifiedDate *time.Time `db:"ModifiedDate" json:"ModifiedDate"`
	CreatedBy    string     `db:"CreatedBy" json:"CreatedBy"`
	ModifiedBy   *string    `db:"ModifiedBy" json:"ModifiedBy"`
	IsDeleted    bool       `db:"IsDeleted" json:"IsDeleted"`
}
