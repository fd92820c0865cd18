package query

import intdb "eventbackend/internal/db"

var people = Collection{
	Name:       "people",
	Table:      "People",
	PrimaryKey: "Id",
	Columns: []Column{
		{Name: "Id", Kind: KindInt},
		{Name: "Name", Kind: KindText, Updatable: true},
		{Name: "Age", Kind: KindInt, Updatable: true},
		{Name: "Role", Kind: KindText, Updatable: true},
		{Name: "Status", Kind: KindText, Nullable: true, Updatable: true},
		{Name: "Secret", Kind: KindText, Hidden: true},
	},
}

var (
	pg    = intdb.Dialect{Driver: intdb.DriverPostgres}
	mysql = intdb.Dialect{Driver: intdb.DriverMySQL}
)

const peopleColumns = `"Id", "Name", "Age", "Role", "Status"`

type person struct {
	ID     int64   `db:"Id"`
	Name   string  `db:"Name"`
	Age    int64   `db:"Age"`
	Role   string  `db:"Role"`
	Status *string `db:"Status"`
}
