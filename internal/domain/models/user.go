package models

import "time"

// User is a row of the Users table. Credential columns (PasswordHash,
// SecurityStamp, ConcurrencyStamp) are never selected into this struct.
type User struct {
	ID                             string     `db:"Id" json:"Id"`
	FirstName                      string     `db:"FirstName" json:"FirstName"`
	LastName                       string     `db:"LastName" json:"LastName"`
	CharacterID                    *int64     `db:"CharacterId" json:"CharacterId"`
	CharacterName                  *string    `db:"CharacterName" json:"CharacterName"`
	ClassLevel                     int64      `db:"ClassLevel" json:"ClassLevel"`
	Streak                         int64      `db:"Streak" json:"Streak"`
	CreatedDate                    time.Time  `db:"CreatedDate" json:"CreatedDate"`
	ModifiedDate                   *time.Time `db:"ModifiedDate" json:"ModifiedDate"`
	CreatedBy                      string     `db:"CreatedBy" json:"CreatedBy"`
	ModifiedBy                     *string    `db:"ModifiedBy" json:"ModifiedBy"`
	IsDeleted                      bool       `db:"IsDeleted" json:"IsDeleted"`
	UserName                       *string    `db:"UserName" json:"UserName"`
	Email                          string     `db:"Email" json:"Email"`
	EmailConfirmed                 bool       `db:"EmailConfirmed" json:"EmailConfirmed"`
	PhoneNumber                    *string    `db:"PhoneNumber" json:"PhoneNumber"`
	PhoneNumberConfirmed           bool       `db:"PhoneNumberConfirmed" json:"PhoneNumberConfirmed"`
	TwoFactorEnabled               bool       `db:"TwoFactorEnabled" json:"TwoFactorEnabled"`
	LockoutEnd                     *time.Time `db:"LockoutEnd" json:"LockoutEnd"`
	LockoutEnabled                 bool       `db:"LockoutEnabled" json:"LockoutEnabled"`
	AccessFailedCount              int64      `db:"AccessFailedCount" json:"AccessFailedCount"`
	HasPromotedQuestion            bool       `db:"HasPromotedQuestion" json:"HasPromotedQuestion"`
	IsDailyQuestionAnsweredCorrect bool       `db:"IsDailyQuestionAnsweredCorrect" json:"IsDailyQuestionAnsweredCorrect"`
	IsSkippedClass                 bool       `db:"IsSkippedClass" json:"IsSkippedClass"`
	RetryDailyQuestion             int64      `db:"RetryDailyQuestion" json:"RetryDailyQuestion"`
	LoginProvider                  int64      `db:"LoginProvider" json:"LoginProvider"`
	OwnerReferralCode              *string    `db:"OwnerReferralCode" json:"OwnerReferralCode"`
	Role                           string     `db:"Role" json:"Role"`
}

// Credentials is the narrow projection used by sign-in.
type Credentials struct {
	ID             string  `db:"Id"`
	UserName       *string `db:"UserName"`
	PasswordHash   *string `db:"PasswordHash"`
	EmailConfirmed bool    `db:"EmailConfirmed"`
	Role           string  `db:"Role"`
}
