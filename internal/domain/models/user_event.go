package models

import "time"

type UserEvent struct {
	ID                 int64      `db:"Id" json:"Id"`
	UserID             string     `db:"UserId" json:"UserId"`
	ReferralCode       *string    `db:"ReferralCode" json:"ReferralCode"`
	TotalReferral      int64      `db:"TotalReferral" json:"TotalReferral"`
	CurrentRouteID     int64      `db:"CurrentRouteId" json:"CurrentRouteId"`
	CurrentRouteIndex  int64      `db:"CurrentRouteIndex" json:"CurrentRouteIndex"`
	IsFinishedEvent    bool       `db:"IsFinishedEvent" json:"IsFinishedEvent"`
	IsUsedSkippedClass bool       `db:"IsUsedSkippedClass" json:"IsUsedSkippedClass"`
	CreatedDate        time.Time  `db:"CreatedDate" json:"CreatedDate"`
	ModifiedDate       *time.Time `db:"ModifiedDate" json:"ModifiedDate"`
	CreatedBy          string     `db:"CreatedBy" json:"CreatedBy"`
	ModifiedBy         *string    `db:"ModifiedBy" json:"ModifiedBy"`
	IsDeleted          bool       `db:"IsDeleted" json:"IsDeleted"`
}
