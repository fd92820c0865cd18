package repositories

import "eventbackend/internal/query"

// Column allow-lists mirror the tables in the RandomName schema. Only the
// columns listed here can be selected, filtered, sorted or updated.

var UsersCollection = query.Collection{
	Name:       "users",
	Table:      "Users",
	PrimaryKey: "Id",
	Columns: []query.Column{
		{Name: "Id", Kind: query.KindText},
		{Name: "FirstName", Kind: query.KindText, Updatable: true},
		{Name: "LastName", Kind: query.KindText, Updatable: true},
		{Name: "CharacterId", Kind: query.KindInt, Nullable: true, Updatable: true},
		{Name: "CharacterName", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "ClassLevel", Kind: query.KindInt, Updatable: true},
		{Name: "Streak", Kind: query.KindInt, Updatable: true},
		{Name: "CreatedDate", Kind: query.KindTime},
		{Name: "ModifiedDate", Kind: query.KindTime, Nullable: true},
		{Name: "CreatedBy", Kind: query.KindText},
		{Name: "ModifiedBy", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "IsDeleted", Kind: query.KindBool, Updatable: true},
		{Name: "UserName", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "Email", Kind: query.KindText, Updatable: true},
		{Name: "EmailConfirmed", Kind: query.KindBool},
		{Name: "PhoneNumber", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "PhoneNumberConfirmed", Kind: query.KindBool},
		{Name: "TwoFactorEnabled", Kind: query.KindBool, Updatable: true},
		{Name: "LockoutEnd", Kind: query.KindTime, Nullable: true},
		{Name: "LockoutEnabled", Kind: query.KindBool, Updatable: true},
		{Name: "AccessFailedCount", Kind: query.KindInt, Updatable: true},
		{Name: "HasPromotedQuestion", Kind: query.KindBool, Updatable: true},
		{Name: "IsDailyQuestionAnsweredCorrect", Kind: query.KindBool},
		{Name: "IsSkippedClass", Kind: query.KindBool},
		{Name: "RetryDailyQuestion", Kind: query.KindInt, Updatable: true},
		{Name: "LoginProvider", Kind: query.KindInt, Updatable: true},
		{Name: "OwnerReferralCode", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "Role", Kind: query.KindText},
		{Name: "NormalizedUserName", Kind: query.KindText, Nullable: true, Hidden: true},
		{Name: "NormalizedEmail", Kind: query.KindText, Nullable: true, Hidden: true},
		{Name: "PasswordHash", Kind: query.KindText, Nullable: true, Hidden: true},
		{Name: "SecurityStamp", Kind: query.KindText, Nullable: true, Hidden: true},
		{Name: "ConcurrencyStamp", Kind: query.KindText, Nullable: true, Hidden: true},
	},
}

var UserEventsCollection = query.Collection{
	Name:       "user events",
	Table:      "UserEvents",
	PrimaryKey: "Id",
	Columns: []query.Column{
		{Name: "Id", Kind: query.KindInt},
		{Name: "UserId", Kind: query.KindText},
		{Name: "ReferralCode", Kind: query.KindText, Nullable: true, Updatable: true},
		{Name: "TotalReferral", Kind: query.KindInt, Updatable: true},
		{Name: "CurrentRouteId", Kind: query.KindInt, Updatable: true},
		{Name: "CurrentRouteIndex", Kind: query.KindInt, Updatable: true},
		{Name: "IsFinishedEvent", Kind: query.KindBool, Updatable: true},
		{Name: "IsUsedSkippedClass", Kind: query.KindBool, Updatable: true},
		{Name: "CreatedDate", Kind: query.KindTime},
		{Name: "ModifiedDate", Kind: query.KindTime, Nullable: true},
		{Name: "CreatedBy", Kind: query.KindText},
		{Name: "ModifiedBy", Kind: query.KindText, Nullable: true},
		{Name: "IsDeleted", Kind: query.KindBool, Updatable: true},
	},
}

var UserGiftsCollection = query.Collection{
	Name:       "user gifts",
	Table:      "UserGifts",
	PrimaryKey: "Id",
	Columns: []query.Column{
		{Name: "Id", Kind: query.KindInt},
		{Name: "UserId", Kind: query.KindText},
		{Name: "GiftId", Kind: query.KindInt},
		{Name: "ClassLevel", Kind: query.KindInt},
		{Name: "CreatedDate", Kind: query.KindTime},
		{Name: "ModifiedDate", Kind: query.KindTime, Nullable: true},
		{Name: "CreatedBy", Kind: query.KindText},
		{Name: "ModifiedBy", Kind: query.KindText, Nullable: true},
		{Name: "IsDeleted", Kind: query.KindBool},
	},
}
